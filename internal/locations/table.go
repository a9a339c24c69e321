package locations

// Table is the static location table. Bits are unique per (stage, kind)
// bitfield; sunken-treasure chart bits equal their island number. Event rows
// carry the absolute save address of the byte holding their flag.
var Table = map[string]Data{
	"Outset Island - Underneath Link's House":                                    {KindEvent, 0x2, 0, 0x803C4400, 0},
	"Outset Island - Mesa the Grasscutter's House":                               {KindEvent, 0x2, 1, 0x803C4400, 1},
	"Outset Island - Orca - Give 10 Knight's Crests":                             {KindEvent, 0x2, 2, 0x803C4400, 2},
	"Outset Island - Great Fairy":                                                {KindEvent, 0x2, 3, 0x803C4400, 3},
	"Outset Island - Jabun's Cave":                                               {KindEvent, 0x2, 4, 0x803C4400, 4},
	"Outset Island - Dig up Black Soil":                                          {KindEvent, 0x2, 5, 0x803C4400, 5},
	"Outset Island - Savage Labyrinth - Floor 30":                                {KindChest, 0x2, 0, 0, 6},
	"Outset Island - Savage Labyrinth - Floor 50":                                {KindChest, 0x2, 1, 0, 7},
	"Windfall Island - Jail - Tingle - First Gift":                               {KindEvent, 0x3, 6, 0x803C4400, 8},
	"Windfall Island - Jail - Tingle - Second Gift":                              {KindEvent, 0x3, 7, 0x803C4400, 9},
	"Windfall Island - Jail - Maze Chest":                                        {KindChest, 0x3, 0, 0, 10},
	"Windfall Island - Chu Jelly Juice Shop - Give 15 Green Chu Jelly":           {KindEvent, 0x3, 0, 0x803C4401, 11},
	"Windfall Island - Chu Jelly Juice Shop - Give 15 Blue Chu Jelly":            {KindEvent, 0x3, 1, 0x803C4401, 12},
	"Windfall Island - Ivan - Catch Killer Bees":                                 {KindEvent, 0x3, 2, 0x803C4401, 13},
	"Windfall Island - Mrs. Marie - Catch Killer Bees":                           {KindEvent, 0x3, 3, 0x803C4401, 14},
	"Windfall Island - Mrs. Marie - Give 1 Joy Pendant":                          {KindEvent, 0x3, 4, 0x803C4401, 15},
	"Windfall Island - Mrs. Marie - Give 21 Joy Pendants":                        {KindEvent, 0x3, 5, 0x803C4401, 16},
	"Windfall Island - Mrs. Marie - Give 40 Joy Pendants":                        {KindEvent, 0x3, 6, 0x803C4401, 17},
	"Windfall Island - Lenzo's House - Left Chest":                               {KindChest, 0x3, 1, 0, 18},
	"Windfall Island - Lenzo's House - Right Chest":                              {KindChest, 0x3, 2, 0, 19},
	"Windfall Island - Lenzo's House - Become Lenzo's Assistant":                 {KindEvent, 0x3, 7, 0x803C4401, 20},
	"Windfall Island - Lenzo's House - Bring Forest Firefly":                     {KindEvent, 0x3, 0, 0x803C4402, 21},
	"Windfall Island - House of Wealth Chest":                                    {KindChest, 0x3, 3, 0, 22},
	"Windfall Island - Maggie's Father - Give 20 Skull Necklaces":                {KindEvent, 0x3, 1, 0x803C4402, 23},
	"Windfall Island - Maggie - Free Item":                                       {KindEvent, 0x3, 2, 0x803C4402, 24},
	"Windfall Island - Maggie - Delivery Reward":                                 {KindSpecial, 0x0, 0, 0, 25},
	"Windfall Island - Cafe Bar - Postman":                                       {KindEvent, 0x3, 3, 0x803C4402, 26},
	"Windfall Island - Kreeb - Light Up Lighthouse":                              {KindEvent, 0x3, 4, 0x803C4402, 27},
	"Windfall Island - Transparent Chest":                                        {KindChest, 0x3, 4, 0, 28},
	"Windfall Island - Tott - Teach Rhythm":                                      {KindEvent, 0x3, 5, 0x803C4402, 29},
	"Windfall Island - Pirate Ship":                                              {KindChest, 0x1, 0, 0, 30},
	"Windfall Island - 5 Rupee Auction":                                          {KindEvent, 0x3, 7, 0x803C4402, 31},
	"Windfall Island - 40 Rupee Auction":                                         {KindEvent, 0x3, 0, 0x803C4403, 32},
	"Windfall Island - 60 Rupee Auction":                                         {KindEvent, 0x3, 1, 0x803C4403, 33},
	"Windfall Island - 80 Rupee Auction":                                         {KindEvent, 0x3, 2, 0x803C4403, 34},
	"Windfall Island - Zunari - Stock Exotic Flower in Zunari's Shop":            {KindEvent, 0x3, 3, 0x803C4403, 35},
	"Windfall Island - Sam - Decorate the Town":                                  {KindEvent, 0x3, 4, 0x803C4403, 36},
	"Windfall Island - Mila - Follow the Thief":                                  {KindEvent, 0x3, 5, 0x803C4403, 37},
	"Windfall Island - Battlesquid - First Prize":                                {KindEvent, 0x3, 6, 0x803C4403, 38},
	"Windfall Island - Battlesquid - Second Prize":                               {KindEvent, 0x3, 7, 0x803C4403, 39},
	"Windfall Island - Battlesquid - Under 20 Shots Prize":                       {KindEvent, 0x3, 0, 0x803C4404, 40},
	"Windfall Island - Pompie and Vera - Secret Meeting Photo":                   {KindEvent, 0x3, 1, 0x803C4404, 41},
	"Windfall Island - Kamo - Full Moon Photo":                                   {KindEvent, 0x3, 2, 0x803C4404, 42},
	"Windfall Island - Minenco - Miss Windfall Photo":                            {KindEvent, 0x3, 3, 0x803C4404, 43},
	"Windfall Island - Linda and Anton":                                          {KindEvent, 0x3, 4, 0x803C4404, 44},
	"Dragon Roost Island - Wind Shrine":                                          {KindEvent, 0x4, 5, 0x803C4404, 45},
	"Dragon Roost Island - Rito Aerie - Give Hoskit 20 Golden Feathers":          {KindEvent, 0x4, 6, 0x803C4404, 46},
	"Dragon Roost Island - Chest on Top of Boulder":                              {KindChest, 0x4, 0, 0, 47},
	"Dragon Roost Island - Fly Across Platforms Around Island":                   {KindEvent, 0x4, 7, 0x803C4404, 48},
	"Dragon Roost Island - Rito Aerie - Mail Sorting":                            {KindEvent, 0x4, 0, 0x803C4405, 49},
	"Dragon Roost Island - Secret Cave":                                          {KindChest, 0x4, 1, 0, 50},
	"Dragon Roost Cavern - First Room":                                           {KindChest, 0x5, 0, 0, 51},
	"Dragon Roost Cavern - Alcove With Water Jugs":                               {KindPickup, 0x5, 0, 0, 52},
	"Dragon Roost Cavern - Water Jug on Upper Shelf":                             {KindPickup, 0x5, 1, 0, 53},
	"Dragon Roost Cavern - Boarded Up Chest":                                     {KindChest, 0x5, 1, 0, 54},
	"Dragon Roost Cavern - Chest Across Lava Pit":                                {KindChest, 0x5, 2, 0, 55},
	"Dragon Roost Cavern - Rat Room":                                             {KindChest, 0x5, 3, 0, 56},
	"Dragon Roost Cavern - Rat Room Boarded Up Chest":                            {KindChest, 0x5, 4, 0, 57},
	"Dragon Roost Cavern - Bird's Nest":                                          {KindPickup, 0x5, 2, 0, 58},
	"Dragon Roost Cavern - Dark Room":                                            {KindChest, 0x5, 5, 0, 59},
	"Dragon Roost Cavern - Tingle Chest in Hub Room":                             {KindChest, 0x5, 6, 0, 60},
	"Dragon Roost Cavern - Pot on Upper Shelf in Pot Room":                       {KindPickup, 0x5, 3, 0, 61},
	"Dragon Roost Cavern - Pot Room Chest":                                       {KindPickup, 0x5, 4, 0, 62},
	"Dragon Roost Cavern - Miniboss":                                             {KindChest, 0x5, 7, 0, 63},
	"Dragon Roost Cavern - Under Rope Bridge":                                    {KindChest, 0x5, 8, 0, 64},
	"Dragon Roost Cavern - Tingle Statue Chest":                                  {KindChest, 0x5, 9, 0, 65},
	"Dragon Roost Cavern - Big Key Chest":                                        {KindChest, 0x5, 10, 0, 66},
	"Dragon Roost Cavern - Boss Stairs Right Chest":                              {KindChest, 0x5, 11, 0, 67},
	"Dragon Roost Cavern - Boss Stairs Left Chest":                               {KindChest, 0x5, 12, 0, 68},
	"Dragon Roost Cavern - Boss Stairs Right Pot":                                {KindPickup, 0x5, 5, 0, 69},
	"Dragon Roost Cavern - Gohma Heart Container":                                {KindPickup, 0x5, 6, 0, 70},
	"Forest Haven - On Tree Branch":                                              {KindEvent, 0x6, 1, 0x803C4405, 71},
	"Forest Haven - Small Island Chest":                                          {KindChest, 0x6, 0, 0, 72},
	"Forbidden Woods - First Room":                                               {KindChest, 0x7, 0, 0, 73},
	"Forbidden Woods - Inside Hollow Tree's Mouth":                               {KindChest, 0x7, 1, 0, 74},
	"Forbidden Woods - Climb to Top Using Boko Baba Bulbs":                       {KindChest, 0x7, 2, 0, 75},
	"Forbidden Woods - Pot High Above Hollow Tree":                               {KindPickup, 0x7, 0, 0, 76},
	"Forbidden Woods - Hole in Tree":                                             {KindChest, 0x7, 3, 0, 77},
	"Forbidden Woods - Morth Pit":                                                {KindChest, 0x7, 4, 0, 78},
	"Forbidden Woods - Vine Maze Left Chest":                                     {KindChest, 0x7, 5, 0, 79},
	"Forbidden Woods - Vine Maze Right Chest":                                    {KindChest, 0x7, 6, 0, 80},
	"Forbidden Woods - Highest Pot in Vine Maze":                                 {KindPickup, 0x7, 1, 0, 81},
	"Forbidden Woods - Tall Room Before Miniboss":                                {KindChest, 0x7, 7, 0, 82},
	"Forbidden Woods - Mothula Miniboss Room":                                    {KindChest, 0x7, 8, 0, 83},
	"Forbidden Woods - Past Seeds Hanging by Vines":                              {KindChest, 0x7, 9, 0, 84},
	"Forbidden Woods - Chest Across Red Hanging Flower":                          {KindChest, 0x7, 10, 0, 85},
	"Forbidden Woods - Tingle Statue Chest":                                      {KindChest, 0x7, 11, 0, 86},
	"Forbidden Woods - Chest in Locked Tree Trunk":                               {KindChest, 0x7, 12, 0, 87},
	"Forbidden Woods - Big Key Chest":                                            {KindChest, 0x7, 13, 0, 88},
	"Forbidden Woods - Double Mothula Room":                                      {KindChest, 0x7, 14, 0, 89},
	"Forbidden Woods - Kalle Demos Heart Container":                              {KindPickup, 0x7, 2, 0, 90},
	"Greatfish Isle - Hidden Chest":                                              {KindChest, 0x8, 0, 0, 91},
	"Tower of the Gods - Chest Behind Bombable Walls":                            {KindChest, 0x9, 0, 0, 92},
	"Tower of the Gods - Pot Behind Bombable Walls":                              {KindPickup, 0x9, 0, 0, 93},
	"Tower of the Gods - Hop Across Floating Boxes":                              {KindChest, 0x9, 1, 0, 94},
	"Tower of the Gods - Light Two Torches":                                      {KindChest, 0x9, 2, 0, 95},
	"Tower of the Gods - Skulls Room Chest":                                      {KindChest, 0x9, 3, 0, 96},
	"Tower of the Gods - Shoot Eye Above Skulls Room Chest":                      {KindChest, 0x9, 4, 0, 97},
	"Tower of the Gods - Tingle Statue Chest":                                    {KindChest, 0x9, 5, 0, 98},
	"Tower of the Gods - First Chest Guarded by Armos Knights":                   {KindChest, 0x9, 6, 0, 99},
	"Tower of the Gods - Stone Tablet":                                           {KindChest, 0x9, 7, 0, 100},
	"Tower of the Gods - Darknut Miniboss Room":                                  {KindChest, 0x9, 8, 0, 101},
	"Tower of the Gods - Second Chest Guarded by Armos Knights":                  {KindChest, 0x9, 9, 0, 102},
	"Tower of the Gods - Floating Platforms Room":                                {KindChest, 0x9, 10, 0, 103},
	"Tower of the Gods - Top of Floating Platforms Room":                         {KindChest, 0x9, 11, 0, 104},
	"Tower of the Gods - Eastern Pot in Big Key Chest Room":                      {KindPickup, 0x9, 1, 0, 105},
	"Tower of the Gods - Big Key Chest":                                          {KindChest, 0x9, 12, 0, 106},
	"Tower of the Gods - Gohdan Heart Container":                                 {KindPickup, 0x9, 2, 0, 107},
	"Hyrule - Master Sword Chamber":                                              {KindChest, 0xA, 0, 0, 108},
	"Forsaken Fortress - Phantom Ganon":                                          {KindChest, 0xB, 0, 0, 109},
	"Forsaken Fortress - Chest Outside Upper Jail Cell":                          {KindChest, 0xB, 1, 0, 110},
	"Forsaken Fortress - Chest Inside Lower Jail Cell":                           {KindChest, 0xB, 2, 0, 111},
	"Forsaken Fortress - Chest Guarded By Bokoblin":                              {KindChest, 0xB, 3, 0, 112},
	"Forsaken Fortress - Chest on Bed":                                           {KindChest, 0xB, 4, 0, 113},
	"Forsaken Fortress - Helmaroc King Heart Container":                          {KindPickup, 0xB, 0, 0, 114},
	"Mother and Child Isles - Inside Mother Isle":                                {KindEvent, 0xC, 2, 0x803C4405, 115},
	"Fire Mountain - Cave - Chest":                                               {KindChest, 0xD, 0, 0, 116},
	"Fire Mountain - Lookout Platform Chest":                                     {KindChest, 0xD, 1, 0, 117},
	"Fire Mountain - Lookout Platform - Destroy the Cannons":                     {KindSwitch, 0xD, 0, 0, 118},
	"Fire Mountain - Big Octo":                                                   {KindBigOcto, 0x0, 0, 0x803C5178, 119},
	"Ice Ring Isle - Frozen Chest":                                               {KindChest, 0xE, 0, 0, 120},
	"Ice Ring Isle - Cave - Chest":                                               {KindChest, 0xE, 1, 0, 121},
	"Ice Ring Isle - Inner Cave - Chest":                                         {KindChest, 0xE, 2, 0, 122},
	"Headstone Island - Top of the Island":                                       {KindEvent, 0xF, 3, 0x803C4405, 123},
	"Headstone Island - Submarine":                                               {KindChest, 0xF, 0, 0, 124},
	"Earth Temple - Transparent Chest In Warp Pot Room":                          {KindPickup, 0x10, 0, 0, 125},
	"Earth Temple - Behind Curtain In Warp Pot Room":                             {KindPickup, 0x10, 1, 0, 126},
	"Earth Temple - Transparent Chest in First Crypt":                            {KindChest, 0x10, 0, 0, 127},
	"Earth Temple - Chest Behind Destructible Walls":                             {KindChest, 0x10, 1, 0, 128},
	"Earth Temple - Chest In Three Blocks Room":                                  {KindChest, 0x10, 2, 0, 129},
	"Earth Temple - Chest Behind Statues":                                        {KindChest, 0x10, 3, 0, 130},
	"Earth Temple - Casket in Second Crypt":                                      {KindPickup, 0x10, 2, 0, 131},
	"Earth Temple - Stalfos Miniboss Room":                                       {KindChest, 0x10, 4, 0, 132},
	"Earth Temple - Tingle Statue Chest":                                         {KindChest, 0x10, 5, 0, 133},
	"Earth Temple - End of Foggy Room With Floormasters":                         {KindChest, 0x10, 6, 0, 134},
	"Earth Temple - Kill All Floormasters in Foggy Room":                         {KindSwitch, 0x10, 0, 0, 135},
	"Earth Temple - Behind Curtain Next to Hammer Button":                        {KindChest, 0x10, 7, 0, 136},
	"Earth Temple - Chest in Third Crypt":                                        {KindChest, 0x10, 8, 0, 137},
	"Earth Temple - Many Mirrors Room Right Chest":                               {KindChest, 0x10, 9, 0, 138},
	"Earth Temple - Many Mirrors Room Left Chest":                                {KindChest, 0x10, 10, 0, 139},
	"Earth Temple - Stalfos Crypt Room":                                          {KindChest, 0x10, 11, 0, 140},
	"Earth Temple - Big Key Chest":                                               {KindChest, 0x10, 12, 0, 141},
	"Earth Temple - Jalhalla Heart Container":                                    {KindPickup, 0x10, 3, 0, 142},
	"Wind Temple - Chest Between Two Dirt Patches":                               {KindChest, 0x11, 0, 0, 143},
	"Wind Temple - Behind Stone Head in Hidden Upper Room":                       {KindChest, 0x11, 1, 0, 144},
	"Wind Temple - Tingle Statue Chest":                                          {KindChest, 0x11, 2, 0, 145},
	"Wind Temple - Chest Behind Stone Head":                                      {KindChest, 0x11, 3, 0, 146},
	"Wind Temple - Chest in Left Alcove":                                         {KindChest, 0x11, 4, 0, 147},
	"Wind Temple - Big Key Chest":                                                {KindChest, 0x11, 5, 0, 148},
	"Wind Temple - Chest In Many Cyclones Room":                                  {KindChest, 0x11, 6, 0, 149},
	"Wind Temple - Behind Stone Head in Many Cyclones Room":                      {KindChest, 0x11, 7, 0, 150},
	"Wind Temple - Chest In Middle Of Hub Room":                                  {KindChest, 0x11, 8, 0, 151},
	"Wind Temple - Spike Wall Room - First Chest":                                {KindChest, 0x11, 9, 0, 152},
	"Wind Temple - Spike Wall Room - Destroy All Cracked Floors":                 {KindSwitch, 0x11, 0, 0, 153},
	"Wind Temple - Wizzrobe Miniboss Room":                                       {KindChest, 0x11, 10, 0, 154},
	"Wind Temple - Chest at Top of Hub Room":                                     {KindChest, 0x11, 11, 0, 155},
	"Wind Temple - Chest Behind Seven Armos":                                     {KindChest, 0x11, 12, 0, 156},
	"Wind Temple - Kill All Enemies in Tall Basement Room":                       {KindSwitch, 0x11, 1, 0, 157},
	"Wind Temple - Molgera Heart Container":                                      {KindPickup, 0x11, 0, 0, 158},
	"Ganon's Tower - Maze Chest":                                                 {KindChest, 0x12, 0, 0, 159},
	"Mailbox - Letter from Hoskit's Girlfriend":                                  {KindEvent, 0x0, 4, 0x803C4405, 160},
	"Mailbox - Letter from Baito's Mother":                                       {KindSpecial, 0x0, 0, 0x803C4CF2, 161},
	"Mailbox - Letter from Baito":                                                {KindEvent, 0x0, 5, 0x803C4405, 162},
	"Mailbox - Letter from Komali's Father":                                      {KindEvent, 0x0, 6, 0x803C4405, 163},
	"Mailbox - Letter Advertising Bombs in Beedle's Shop":                        {KindEvent, 0x0, 7, 0x803C4405, 164},
	"Mailbox - Letter Advertising Rock Spire Shop Ship":                          {KindEvent, 0x0, 0, 0x803C4406, 165},
	"Mailbox - Letter from Orca":                                                 {KindEvent, 0x0, 1, 0x803C4406, 166},
	"Mailbox - Letter from Grandma":                                              {KindSpecial, 0x0, 0, 0x803C4CF3, 167},
	"Mailbox - Letter from Aryll":                                                {KindEvent, 0x0, 2, 0x803C4406, 168},
	"Mailbox - Letter from Tingle":                                               {KindEvent, 0x0, 3, 0x803C4406, 169},
	"The Great Sea - Beedle's Shop Ship - 20 Rupee Item":                         {KindEvent, 0x0, 4, 0x803C4406, 170},
	"The Great Sea - Salvage Corp Gift":                                          {KindEvent, 0x0, 5, 0x803C4406, 171},
	"The Great Sea - Cyclos":                                                     {KindEvent, 0x0, 6, 0x803C4406, 172},
	"The Great Sea - Goron Trading Reward":                                       {KindEvent, 0x0, 7, 0x803C4406, 173},
	"The Great Sea - Withered Trees":                                             {KindEvent, 0x0, 0, 0x803C4407, 174},
	"The Great Sea - Ghost Ship":                                                 {KindEvent, 0x0, 1, 0x803C4407, 175},
	"Private Oasis - Chest at Top of Waterfall":                                  {KindChest, 0x13, 0, 0, 176},
	"Private Oasis - Cabana Labyrinth - Lower Floor Chest":                       {KindChest, 0x13, 1, 0, 177},
	"Private Oasis - Cabana Labyrinth - Upper Floor Chest":                       {KindChest, 0x13, 2, 0, 178},
	"Private Oasis - Big Octo":                                                   {KindBigOcto, 0x0, 1, 0x803C5178, 179},
	"Spectacle Island - Barrel Shooting - First Prize":                           {KindEvent, 0x14, 2, 0x803C4407, 180},
	"Spectacle Island - Barrel Shooting - Second Prize":                          {KindEvent, 0x14, 3, 0x803C4407, 181},
	"Needle Rock Isle - Chest":                                                   {KindChest, 0x15, 0, 0, 182},
	"Needle Rock Isle - Cave":                                                    {KindChest, 0x15, 1, 0, 183},
	"Needle Rock Isle - Golden Gunboat":                                          {KindChest, 0x15, 2, 0, 184},
	"Angular Isles - Peak":                                                       {KindEvent, 0x16, 4, 0x803C4407, 185},
	"Angular Isles - Cave":                                                       {KindChest, 0x16, 0, 0, 186},
	"Boating Course - Raft":                                                      {KindChest, 0x17, 0, 0, 187},
	"Boating Course - Cave":                                                      {KindChest, 0x17, 1, 0, 188},
	"Stone Watcher Island - Cave":                                                {KindChest, 0x18, 0, 0, 189},
	"Stone Watcher Island - Lookout Platform Chest":                              {KindChest, 0x18, 1, 0, 190},
	"Stone Watcher Island - Lookout Platform - Destroy the Cannons":              {KindSwitch, 0x18, 0, 0, 191},
	"Islet of Steel - Interior":                                                  {KindChest, 0x19, 0, 0, 192},
	"Islet of Steel - Lookout Platform - Defeat the Enemies":                     {KindSwitch, 0x19, 0, 0, 193},
	"Overlook Island - Cave":                                                     {KindChest, 0x1A, 0, 0, 194},
	"Bird's Peak Rock - Cave":                                                    {KindChest, 0x1B, 0, 0, 195},
	"Pawprint Isle - Chuchu Cave - Chest":                                        {KindChest, 0x1C, 0, 0, 196},
	"Pawprint Isle - Chuchu Cave - Behind Left Boulder":                          {KindEvent, 0x1C, 5, 0x803C4407, 197},
	"Pawprint Isle - Chuchu Cave - Behind Right Boulder":                         {KindEvent, 0x1C, 6, 0x803C4407, 198},
	"Pawprint Isle - Chuchu Cave - Scale the Wall":                               {KindEvent, 0x1C, 7, 0x803C4407, 199},
	"Pawprint Isle - Wizzrobe Cave":                                              {KindEvent, 0x1C, 0, 0x803C4408, 200},
	"Pawprint Isle - Lookout Platform - Defeat the Enemies":                      {KindSwitch, 0x1C, 0, 0, 201},
	"Thorned Fairy Island - Great Fairy":                                         {KindEvent, 0x1D, 1, 0x803C4408, 202},
	"Thorned Fairy Island - Northeastern Lookout Platform - Destroy the Cannons": {KindSwitch, 0x1D, 0, 0, 203},
	"Thorned Fairy Island - Southwestern Lookout Platform - Defeat the Enemies":  {KindSwitch, 0x1D, 1, 0, 204},
	"Eastern Fairy Island - Great Fairy":                                         {KindEvent, 0x1E, 2, 0x803C4408, 205},
	"Eastern Fairy Island - Lookout Platform - Defeat the Cannons and Enemies":   {KindSwitch, 0x1E, 0, 0, 206},
	"Western Fairy Island - Great Fairy":                                         {KindEvent, 0x1F, 3, 0x803C4408, 207},
	"Western Fairy Island - Lookout Platform":                                    {KindChest, 0x1F, 0, 0, 208},
	"Southern Fairy Island - Great Fairy":                                        {KindEvent, 0x20, 4, 0x803C4408, 209},
	"Southern Fairy Island - Lookout Platform - Destroy the Northwest Cannons":   {KindSwitch, 0x20, 0, 0, 210},
	"Southern Fairy Island - Lookout Platform - Destroy the Southeast Cannons":   {KindSwitch, 0x20, 1, 0, 211},
	"Northern Fairy Island - Great Fairy":                                        {KindEvent, 0x21, 5, 0x803C4408, 212},
	"Northern Fairy Island - Submarine":                                          {KindChest, 0x21, 0, 0, 213},
	"Tingle Island - Ankle - Reward for All Tingle Statues":                      {KindEvent, 0x22, 6, 0x803C4408, 214},
	"Tingle Island - Big Octo":                                                   {KindBigOcto, 0x0, 2, 0x803C5178, 215},
	"Diamond Steppe Island - Warp Maze Cave - First Chest":                       {KindChest, 0x23, 0, 0, 216},
	"Diamond Steppe Island - Warp Maze Cave - Second Chest":                      {KindChest, 0x23, 1, 0, 217},
	"Diamond Steppe Island - Big Octo":                                           {KindBigOcto, 0x0, 3, 0x803C5178, 218},
	"Bomb Island - Cave":                                                         {KindChest, 0x24, 0, 0, 219},
	"Bomb Island - Lookout Platform - Defeat the Enemies":                        {KindSwitch, 0x24, 0, 0, 220},
	"Bomb Island - Submarine":                                                    {KindChest, 0x24, 1, 0, 221},
	"Rock Spire Isle - Cave":                                                     {KindChest, 0x25, 0, 0, 222},
	"Rock Spire Isle - Beedle's Special Shop Ship - 500 Rupee Item":              {KindEvent, 0x25, 7, 0x803C4408, 223},
	"Rock Spire Isle - Beedle's Special Shop Ship - 950 Rupee Item":              {KindEvent, 0x25, 0, 0x803C4409, 224},
	"Rock Spire Isle - Beedle's Special Shop Ship - 900 Rupee Item":              {KindEvent, 0x25, 1, 0x803C4409, 225},
	"Rock Spire Isle - Western Lookout Platform - Destroy the Cannons":           {KindSwitch, 0x25, 0, 0, 226},
	"Rock Spire Isle - Eastern Lookout Platform - Destroy the Cannons":           {KindSwitch, 0x25, 1, 0, 227},
	"Rock Spire Isle - Center Lookout Platform":                                  {KindChest, 0x25, 1, 0, 228},
	"Rock Spire Isle - Southeast Gunboat":                                        {KindChest, 0x25, 2, 0, 229},
	"Shark Island - Cave":                                                        {KindChest, 0x26, 0, 0, 230},
	"Cliff Plateau Isles - Cave":                                                 {KindChest, 0x27, 0, 0, 231},
	"Cliff Plateau Isles - Highest Isle":                                         {KindEvent, 0x27, 2, 0x803C4409, 232},
	"Cliff Plateau Isles - Lookout Platform":                                     {KindChest, 0x27, 1, 0, 233},
	"Crescent Moon Island - Chest":                                               {KindChest, 0x28, 0, 0, 234},
	"Crescent Moon Island - Submarine":                                           {KindChest, 0x28, 1, 0, 235},
	"Horseshoe Island - Play Golf":                                               {KindEvent, 0x29, 3, 0x803C4409, 236},
	"Horseshoe Island - Cave":                                                    {KindChest, 0x29, 0, 0, 237},
	"Horseshoe Island - Northwestern Lookout Platform":                           {KindChest, 0x29, 1, 0, 238},
	"Horseshoe Island - Southeastern Lookout Platform":                           {KindChest, 0x29, 2, 0, 239},
	"Flight Control Platform - Bird-Man Contest - First Prize":                   {KindEvent, 0x2A, 4, 0x803C4409, 240},
	"Flight Control Platform - Submarine":                                        {KindChest, 0x2A, 0, 0, 241},
	"Star Island - Cave":                                                         {KindChest, 0x2B, 0, 0, 242},
	"Star Island - Lookout Platform":                                             {KindChest, 0x2B, 1, 0, 243},
	"Star Belt Archipelago - Lookout Platform":                                   {KindChest, 0x2C, 0, 0, 244},
	"Five-Star Isles - Lookout Platform - Destroy the Cannons":                   {KindSwitch, 0x2D, 0, 0, 245},
	"Five-Star Isles - Raft":                                                     {KindChest, 0x2D, 0, 0, 246},
	"Five-Star Isles - Submarine":                                                {KindChest, 0x2D, 1, 0, 247},
	"Seven-Star Isles - Center Lookout Platform":                                 {KindChest, 0x2E, 0, 0, 248},
	"Seven-Star Isles - Northern Lookout Platform":                               {KindChest, 0x2E, 1, 0, 249},
	"Seven-Star Isles - Southern Lookout Platform":                               {KindChest, 0x2E, 2, 0, 250},
	"Seven-Star Isles - Big Octo":                                                {KindBigOcto, 0x0, 4, 0x803C5178, 251},
	"Cyclops Reef - Destroy the Cannons and Gunboats":                            {KindSwitch, 0x2F, 0, 0, 252},
	"Cyclops Reef - Lookout Platform - Defeat the Enemies":                       {KindSwitch, 0x2F, 1, 0, 253},
	"Two-Eye Reef - Destroy the Cannons and Gunboats":                            {KindSwitch, 0x30, 0, 0, 254},
	"Two-Eye Reef - Lookout Platform":                                            {KindChest, 0x30, 0, 0, 255},
	"Two-Eye Reef - Big Octo Great Fairy":                                        {KindBigOcto, 0x0, 5, 0x803C5178, 256},
	"Three-Eye Reef - Destroy the Cannons and Gunboats":                          {KindSwitch, 0x31, 0, 0, 257},
	"Four-Eye Reef - Destroy the Cannons and Gunboats":                           {KindSwitch, 0x32, 0, 0, 258},
	"Five-Eye Reef - Destroy the Cannons":                                        {KindSwitch, 0x33, 0, 0, 259},
	"Five-Eye Reef - Lookout Platform":                                           {KindChest, 0x33, 0, 0, 260},
	"Six-Eye Reef - Destroy the Cannons and Gunboats":                            {KindSwitch, 0x34, 0, 0, 261},
	"Six-Eye Reef - Lookout Platform - Destroy the Cannons":                      {KindSwitch, 0x34, 1, 0, 262},
	"Six-Eye Reef - Submarine":                                                   {KindChest, 0x34, 0, 0, 263},
	"Forsaken Fortress Sector - Sunken Treasure":                                 {KindChart, 0x0, 1, 0, 264},
	"Star Island - Sunken Treasure":                                              {KindChart, 0x0, 2, 0, 265},
	"Northern Fairy Island - Sunken Treasure":                                    {KindChart, 0x0, 3, 0, 266},
	"Gale Isle - Sunken Treasure":                                                {KindChart, 0x0, 4, 0, 267},
	"Crescent Moon Island - Sunken Treasure":                                     {KindChart, 0x0, 5, 0, 268},
	"Seven-Star Isles - Sunken Treasure":                                         {KindChart, 0x0, 6, 0, 269},
	"Overlook Island - Sunken Treasure":                                          {KindChart, 0x0, 7, 0, 270},
	"Four-Eye Reef - Sunken Treasure":                                            {KindChart, 0x0, 8, 0, 271},
	"Mother and Child Isles - Sunken Treasure":                                   {KindChart, 0x0, 9, 0, 272},
	"Spectacle Island - Sunken Treasure":                                         {KindChart, 0x0, 10, 0, 273},
	"Windfall Island - Sunken Treasure":                                          {KindChart, 0x0, 11, 0, 274},
	"Pawprint Isle - Sunken Treasure":                                            {KindChart, 0x0, 12, 0, 275},
	"Dragon Roost Island - Sunken Treasure":                                      {KindChart, 0x0, 13, 0, 276},
	"Flight Control Platform - Sunken Treasure":                                  {KindChart, 0x0, 14, 0, 277},
	"Western Fairy Island - Sunken Treasure":                                     {KindChart, 0x0, 15, 0, 278},
	"Rock Spire Isle - Sunken Treasure":                                          {KindChart, 0x0, 16, 0, 279},
	"Tingle Island - Sunken Treasure":                                            {KindChart, 0x0, 17, 0, 280},
	"Northern Triangle Island - Sunken Treasure":                                 {KindChart, 0x0, 18, 0, 281},
	"Eastern Fairy Island - Sunken Treasure":                                     {KindChart, 0x0, 19, 0, 282},
	"Fire Mountain - Sunken Treasure":                                            {KindChart, 0x0, 20, 0, 283},
	"Star Belt Archipelago - Sunken Treasure":                                    {KindChart, 0x0, 21, 0, 284},
	"Three-Eye Reef - Sunken Treasure":                                           {KindChart, 0x0, 22, 0, 285},
	"Greatfish Isle - Sunken Treasure":                                           {KindChart, 0x0, 23, 0, 286},
	"Cyclops Reef - Sunken Treasure":                                             {KindChart, 0x0, 24, 0, 287},
	"Six-Eye Reef - Sunken Treasure":                                             {KindChart, 0x0, 25, 0, 288},
	"Tower of the Gods Sector - Sunken Treasure":                                 {KindChart, 0x0, 26, 0, 289},
	"Eastern Triangle Island - Sunken Treasure":                                  {KindChart, 0x0, 27, 0, 290},
	"Thorned Fairy Island - Sunken Treasure":                                     {KindChart, 0x0, 28, 0, 291},
	"Needle Rock Isle - Sunken Treasure":                                         {KindChart, 0x0, 29, 0, 292},
	"Islet of Steel - Sunken Treasure":                                           {KindChart, 0x0, 30, 0, 293},
	"Stone Watcher Island - Sunken Treasure":                                     {KindChart, 0x0, 31, 0, 294},
	"Southern Triangle Island - Sunken Treasure":                                 {KindChart, 0x0, 32, 0, 295},
	"Private Oasis - Sunken Treasure":                                            {KindChart, 0x0, 33, 0, 296},
	"Bomb Island - Sunken Treasure":                                              {KindChart, 0x0, 34, 0, 297},
	"Bird's Peak Rock - Sunken Treasure":                                         {KindChart, 0x0, 35, 0, 298},
	"Diamond Steppe Island - Sunken Treasure":                                    {KindChart, 0x0, 36, 0, 299},
	"Five-Eye Reef - Sunken Treasure":                                            {KindChart, 0x0, 37, 0, 300},
	"Shark Island - Sunken Treasure":                                             {KindChart, 0x0, 38, 0, 301},
	"Southern Fairy Island - Sunken Treasure":                                    {KindChart, 0x0, 39, 0, 302},
	"Ice Ring Isle - Sunken Treasure":                                            {KindChart, 0x0, 40, 0, 303},
	"Forest Haven - Sunken Treasure":                                             {KindChart, 0x0, 41, 0, 304},
	"Cliff Plateau Isles - Sunken Treasure":                                      {KindChart, 0x0, 42, 0, 305},
	"Horseshoe Island - Sunken Treasure":                                         {KindChart, 0x0, 43, 0, 306},
	"Outset Island - Sunken Treasure":                                            {KindChart, 0x0, 44, 0, 307},
	"Headstone Island - Sunken Treasure":                                         {KindChart, 0x0, 45, 0, 308},
	"Two-Eye Reef - Sunken Treasure":                                             {KindChart, 0x0, 46, 0, 309},
	"Angular Isles - Sunken Treasure":                                            {KindChart, 0x0, 47, 0, 310},
	"Boating Course - Sunken Treasure":                                           {KindChart, 0x0, 48, 0, 311},
	"Five-Star Isles - Sunken Treasure":                                          {KindChart, 0x0, 49, 0, 312},
	"Defeat Ganondorf":                                                           {KindChest, 0x12, 1, 0, NoCode},
}

// Names lists every location in rule-registration order.
var Names = []string{
	"Outset Island - Underneath Link's House",
	"Outset Island - Mesa the Grasscutter's House",
	"Outset Island - Orca - Give 10 Knight's Crests",
	"Outset Island - Great Fairy",
	"Outset Island - Jabun's Cave",
	"Outset Island - Dig up Black Soil",
	"Outset Island - Savage Labyrinth - Floor 30",
	"Outset Island - Savage Labyrinth - Floor 50",
	"Windfall Island - Jail - Tingle - First Gift",
	"Windfall Island - Jail - Tingle - Second Gift",
	"Windfall Island - Jail - Maze Chest",
	"Windfall Island - Chu Jelly Juice Shop - Give 15 Green Chu Jelly",
	"Windfall Island - Chu Jelly Juice Shop - Give 15 Blue Chu Jelly",
	"Windfall Island - Ivan - Catch Killer Bees",
	"Windfall Island - Mrs. Marie - Catch Killer Bees",
	"Windfall Island - Mrs. Marie - Give 1 Joy Pendant",
	"Windfall Island - Mrs. Marie - Give 21 Joy Pendants",
	"Windfall Island - Mrs. Marie - Give 40 Joy Pendants",
	"Windfall Island - Lenzo's House - Left Chest",
	"Windfall Island - Lenzo's House - Right Chest",
	"Windfall Island - Lenzo's House - Become Lenzo's Assistant",
	"Windfall Island - Lenzo's House - Bring Forest Firefly",
	"Windfall Island - House of Wealth Chest",
	"Windfall Island - Maggie's Father - Give 20 Skull Necklaces",
	"Windfall Island - Maggie - Free Item",
	"Windfall Island - Maggie - Delivery Reward",
	"Windfall Island - Cafe Bar - Postman",
	"Windfall Island - Kreeb - Light Up Lighthouse",
	"Windfall Island - Transparent Chest",
	"Windfall Island - Tott - Teach Rhythm",
	"Windfall Island - Pirate Ship",
	"Windfall Island - 5 Rupee Auction",
	"Windfall Island - 40 Rupee Auction",
	"Windfall Island - 60 Rupee Auction",
	"Windfall Island - 80 Rupee Auction",
	"Windfall Island - Zunari - Stock Exotic Flower in Zunari's Shop",
	"Windfall Island - Sam - Decorate the Town",
	"Windfall Island - Mila - Follow the Thief",
	"Windfall Island - Battlesquid - First Prize",
	"Windfall Island - Battlesquid - Second Prize",
	"Windfall Island - Battlesquid - Under 20 Shots Prize",
	"Windfall Island - Pompie and Vera - Secret Meeting Photo",
	"Windfall Island - Kamo - Full Moon Photo",
	"Windfall Island - Minenco - Miss Windfall Photo",
	"Windfall Island - Linda and Anton",
	"Dragon Roost Island - Wind Shrine",
	"Dragon Roost Island - Rito Aerie - Give Hoskit 20 Golden Feathers",
	"Dragon Roost Island - Chest on Top of Boulder",
	"Dragon Roost Island - Fly Across Platforms Around Island",
	"Dragon Roost Island - Rito Aerie - Mail Sorting",
	"Dragon Roost Island - Secret Cave",
	"Dragon Roost Cavern - First Room",
	"Dragon Roost Cavern - Alcove With Water Jugs",
	"Dragon Roost Cavern - Water Jug on Upper Shelf",
	"Dragon Roost Cavern - Boarded Up Chest",
	"Dragon Roost Cavern - Chest Across Lava Pit",
	"Dragon Roost Cavern - Rat Room",
	"Dragon Roost Cavern - Rat Room Boarded Up Chest",
	"Dragon Roost Cavern - Bird's Nest",
	"Dragon Roost Cavern - Dark Room",
	"Dragon Roost Cavern - Tingle Chest in Hub Room",
	"Dragon Roost Cavern - Pot on Upper Shelf in Pot Room",
	"Dragon Roost Cavern - Pot Room Chest",
	"Dragon Roost Cavern - Miniboss",
	"Dragon Roost Cavern - Under Rope Bridge",
	"Dragon Roost Cavern - Tingle Statue Chest",
	"Dragon Roost Cavern - Big Key Chest",
	"Dragon Roost Cavern - Boss Stairs Right Chest",
	"Dragon Roost Cavern - Boss Stairs Left Chest",
	"Dragon Roost Cavern - Boss Stairs Right Pot",
	"Dragon Roost Cavern - Gohma Heart Container",
	"Forest Haven - On Tree Branch",
	"Forest Haven - Small Island Chest",
	"Forbidden Woods - First Room",
	"Forbidden Woods - Inside Hollow Tree's Mouth",
	"Forbidden Woods - Climb to Top Using Boko Baba Bulbs",
	"Forbidden Woods - Pot High Above Hollow Tree",
	"Forbidden Woods - Hole in Tree",
	"Forbidden Woods - Morth Pit",
	"Forbidden Woods - Vine Maze Left Chest",
	"Forbidden Woods - Vine Maze Right Chest",
	"Forbidden Woods - Highest Pot in Vine Maze",
	"Forbidden Woods - Tall Room Before Miniboss",
	"Forbidden Woods - Mothula Miniboss Room",
	"Forbidden Woods - Past Seeds Hanging by Vines",
	"Forbidden Woods - Chest Across Red Hanging Flower",
	"Forbidden Woods - Tingle Statue Chest",
	"Forbidden Woods - Chest in Locked Tree Trunk",
	"Forbidden Woods - Big Key Chest",
	"Forbidden Woods - Double Mothula Room",
	"Forbidden Woods - Kalle Demos Heart Container",
	"Greatfish Isle - Hidden Chest",
	"Tower of the Gods - Chest Behind Bombable Walls",
	"Tower of the Gods - Pot Behind Bombable Walls",
	"Tower of the Gods - Hop Across Floating Boxes",
	"Tower of the Gods - Light Two Torches",
	"Tower of the Gods - Skulls Room Chest",
	"Tower of the Gods - Shoot Eye Above Skulls Room Chest",
	"Tower of the Gods - Tingle Statue Chest",
	"Tower of the Gods - First Chest Guarded by Armos Knights",
	"Tower of the Gods - Stone Tablet",
	"Tower of the Gods - Darknut Miniboss Room",
	"Tower of the Gods - Second Chest Guarded by Armos Knights",
	"Tower of the Gods - Floating Platforms Room",
	"Tower of the Gods - Top of Floating Platforms Room",
	"Tower of the Gods - Eastern Pot in Big Key Chest Room",
	"Tower of the Gods - Big Key Chest",
	"Tower of the Gods - Gohdan Heart Container",
	"Hyrule - Master Sword Chamber",
	"Forsaken Fortress - Phantom Ganon",
	"Forsaken Fortress - Chest Outside Upper Jail Cell",
	"Forsaken Fortress - Chest Inside Lower Jail Cell",
	"Forsaken Fortress - Chest Guarded By Bokoblin",
	"Forsaken Fortress - Chest on Bed",
	"Forsaken Fortress - Helmaroc King Heart Container",
	"Mother and Child Isles - Inside Mother Isle",
	"Fire Mountain - Cave - Chest",
	"Fire Mountain - Lookout Platform Chest",
	"Fire Mountain - Lookout Platform - Destroy the Cannons",
	"Fire Mountain - Big Octo",
	"Ice Ring Isle - Frozen Chest",
	"Ice Ring Isle - Cave - Chest",
	"Ice Ring Isle - Inner Cave - Chest",
	"Headstone Island - Top of the Island",
	"Headstone Island - Submarine",
	"Earth Temple - Transparent Chest In Warp Pot Room",
	"Earth Temple - Behind Curtain In Warp Pot Room",
	"Earth Temple - Transparent Chest in First Crypt",
	"Earth Temple - Chest Behind Destructible Walls",
	"Earth Temple - Chest In Three Blocks Room",
	"Earth Temple - Chest Behind Statues",
	"Earth Temple - Casket in Second Crypt",
	"Earth Temple - Stalfos Miniboss Room",
	"Earth Temple - Tingle Statue Chest",
	"Earth Temple - End of Foggy Room With Floormasters",
	"Earth Temple - Kill All Floormasters in Foggy Room",
	"Earth Temple - Behind Curtain Next to Hammer Button",
	"Earth Temple - Chest in Third Crypt",
	"Earth Temple - Many Mirrors Room Right Chest",
	"Earth Temple - Many Mirrors Room Left Chest",
	"Earth Temple - Stalfos Crypt Room",
	"Earth Temple - Big Key Chest",
	"Earth Temple - Jalhalla Heart Container",
	"Wind Temple - Chest Between Two Dirt Patches",
	"Wind Temple - Behind Stone Head in Hidden Upper Room",
	"Wind Temple - Tingle Statue Chest",
	"Wind Temple - Chest Behind Stone Head",
	"Wind Temple - Chest in Left Alcove",
	"Wind Temple - Big Key Chest",
	"Wind Temple - Chest In Many Cyclones Room",
	"Wind Temple - Behind Stone Head in Many Cyclones Room",
	"Wind Temple - Chest In Middle Of Hub Room",
	"Wind Temple - Spike Wall Room - First Chest",
	"Wind Temple - Spike Wall Room - Destroy All Cracked Floors",
	"Wind Temple - Wizzrobe Miniboss Room",
	"Wind Temple - Chest at Top of Hub Room",
	"Wind Temple - Chest Behind Seven Armos",
	"Wind Temple - Kill All Enemies in Tall Basement Room",
	"Wind Temple - Molgera Heart Container",
	"Ganon's Tower - Maze Chest",
	"Mailbox - Letter from Hoskit's Girlfriend",
	"Mailbox - Letter from Baito's Mother",
	"Mailbox - Letter from Baito",
	"Mailbox - Letter from Komali's Father",
	"Mailbox - Letter Advertising Bombs in Beedle's Shop",
	"Mailbox - Letter Advertising Rock Spire Shop Ship",
	"Mailbox - Letter from Orca",
	"Mailbox - Letter from Grandma",
	"Mailbox - Letter from Aryll",
	"Mailbox - Letter from Tingle",
	"The Great Sea - Beedle's Shop Ship - 20 Rupee Item",
	"The Great Sea - Salvage Corp Gift",
	"The Great Sea - Cyclos",
	"The Great Sea - Goron Trading Reward",
	"The Great Sea - Withered Trees",
	"The Great Sea - Ghost Ship",
	"Private Oasis - Chest at Top of Waterfall",
	"Private Oasis - Cabana Labyrinth - Lower Floor Chest",
	"Private Oasis - Cabana Labyrinth - Upper Floor Chest",
	"Private Oasis - Big Octo",
	"Spectacle Island - Barrel Shooting - First Prize",
	"Spectacle Island - Barrel Shooting - Second Prize",
	"Needle Rock Isle - Chest",
	"Needle Rock Isle - Cave",
	"Needle Rock Isle - Golden Gunboat",
	"Angular Isles - Peak",
	"Angular Isles - Cave",
	"Boating Course - Raft",
	"Boating Course - Cave",
	"Stone Watcher Island - Cave",
	"Stone Watcher Island - Lookout Platform Chest",
	"Stone Watcher Island - Lookout Platform - Destroy the Cannons",
	"Islet of Steel - Interior",
	"Islet of Steel - Lookout Platform - Defeat the Enemies",
	"Overlook Island - Cave",
	"Bird's Peak Rock - Cave",
	"Pawprint Isle - Chuchu Cave - Chest",
	"Pawprint Isle - Chuchu Cave - Behind Left Boulder",
	"Pawprint Isle - Chuchu Cave - Behind Right Boulder",
	"Pawprint Isle - Chuchu Cave - Scale the Wall",
	"Pawprint Isle - Wizzrobe Cave",
	"Pawprint Isle - Lookout Platform - Defeat the Enemies",
	"Thorned Fairy Island - Great Fairy",
	"Thorned Fairy Island - Northeastern Lookout Platform - Destroy the Cannons",
	"Thorned Fairy Island - Southwestern Lookout Platform - Defeat the Enemies",
	"Eastern Fairy Island - Great Fairy",
	"Eastern Fairy Island - Lookout Platform - Defeat the Cannons and Enemies",
	"Western Fairy Island - Great Fairy",
	"Western Fairy Island - Lookout Platform",
	"Southern Fairy Island - Great Fairy",
	"Southern Fairy Island - Lookout Platform - Destroy the Northwest Cannons",
	"Southern Fairy Island - Lookout Platform - Destroy the Southeast Cannons",
	"Northern Fairy Island - Great Fairy",
	"Northern Fairy Island - Submarine",
	"Tingle Island - Ankle - Reward for All Tingle Statues",
	"Tingle Island - Big Octo",
	"Diamond Steppe Island - Warp Maze Cave - First Chest",
	"Diamond Steppe Island - Warp Maze Cave - Second Chest",
	"Diamond Steppe Island - Big Octo",
	"Bomb Island - Cave",
	"Bomb Island - Lookout Platform - Defeat the Enemies",
	"Bomb Island - Submarine",
	"Rock Spire Isle - Cave",
	"Rock Spire Isle - Beedle's Special Shop Ship - 500 Rupee Item",
	"Rock Spire Isle - Beedle's Special Shop Ship - 950 Rupee Item",
	"Rock Spire Isle - Beedle's Special Shop Ship - 900 Rupee Item",
	"Rock Spire Isle - Western Lookout Platform - Destroy the Cannons",
	"Rock Spire Isle - Eastern Lookout Platform - Destroy the Cannons",
	"Rock Spire Isle - Center Lookout Platform",
	"Rock Spire Isle - Southeast Gunboat",
	"Shark Island - Cave",
	"Cliff Plateau Isles - Cave",
	"Cliff Plateau Isles - Highest Isle",
	"Cliff Plateau Isles - Lookout Platform",
	"Crescent Moon Island - Chest",
	"Crescent Moon Island - Submarine",
	"Horseshoe Island - Play Golf",
	"Horseshoe Island - Cave",
	"Horseshoe Island - Northwestern Lookout Platform",
	"Horseshoe Island - Southeastern Lookout Platform",
	"Flight Control Platform - Bird-Man Contest - First Prize",
	"Flight Control Platform - Submarine",
	"Star Island - Cave",
	"Star Island - Lookout Platform",
	"Star Belt Archipelago - Lookout Platform",
	"Five-Star Isles - Lookout Platform - Destroy the Cannons",
	"Five-Star Isles - Raft",
	"Five-Star Isles - Submarine",
	"Seven-Star Isles - Center Lookout Platform",
	"Seven-Star Isles - Northern Lookout Platform",
	"Seven-Star Isles - Southern Lookout Platform",
	"Seven-Star Isles - Big Octo",
	"Cyclops Reef - Destroy the Cannons and Gunboats",
	"Cyclops Reef - Lookout Platform - Defeat the Enemies",
	"Two-Eye Reef - Destroy the Cannons and Gunboats",
	"Two-Eye Reef - Lookout Platform",
	"Two-Eye Reef - Big Octo Great Fairy",
	"Three-Eye Reef - Destroy the Cannons and Gunboats",
	"Four-Eye Reef - Destroy the Cannons and Gunboats",
	"Five-Eye Reef - Destroy the Cannons",
	"Five-Eye Reef - Lookout Platform",
	"Six-Eye Reef - Destroy the Cannons and Gunboats",
	"Six-Eye Reef - Lookout Platform - Destroy the Cannons",
	"Six-Eye Reef - Submarine",
	"Forsaken Fortress Sector - Sunken Treasure",
	"Star Island - Sunken Treasure",
	"Northern Fairy Island - Sunken Treasure",
	"Gale Isle - Sunken Treasure",
	"Crescent Moon Island - Sunken Treasure",
	"Seven-Star Isles - Sunken Treasure",
	"Overlook Island - Sunken Treasure",
	"Four-Eye Reef - Sunken Treasure",
	"Mother and Child Isles - Sunken Treasure",
	"Spectacle Island - Sunken Treasure",
	"Windfall Island - Sunken Treasure",
	"Pawprint Isle - Sunken Treasure",
	"Dragon Roost Island - Sunken Treasure",
	"Flight Control Platform - Sunken Treasure",
	"Western Fairy Island - Sunken Treasure",
	"Rock Spire Isle - Sunken Treasure",
	"Tingle Island - Sunken Treasure",
	"Northern Triangle Island - Sunken Treasure",
	"Eastern Fairy Island - Sunken Treasure",
	"Fire Mountain - Sunken Treasure",
	"Star Belt Archipelago - Sunken Treasure",
	"Three-Eye Reef - Sunken Treasure",
	"Greatfish Isle - Sunken Treasure",
	"Cyclops Reef - Sunken Treasure",
	"Six-Eye Reef - Sunken Treasure",
	"Tower of the Gods Sector - Sunken Treasure",
	"Eastern Triangle Island - Sunken Treasure",
	"Thorned Fairy Island - Sunken Treasure",
	"Needle Rock Isle - Sunken Treasure",
	"Islet of Steel - Sunken Treasure",
	"Stone Watcher Island - Sunken Treasure",
	"Southern Triangle Island - Sunken Treasure",
	"Private Oasis - Sunken Treasure",
	"Bomb Island - Sunken Treasure",
	"Bird's Peak Rock - Sunken Treasure",
	"Diamond Steppe Island - Sunken Treasure",
	"Five-Eye Reef - Sunken Treasure",
	"Shark Island - Sunken Treasure",
	"Southern Fairy Island - Sunken Treasure",
	"Ice Ring Isle - Sunken Treasure",
	"Forest Haven - Sunken Treasure",
	"Cliff Plateau Isles - Sunken Treasure",
	"Horseshoe Island - Sunken Treasure",
	"Outset Island - Sunken Treasure",
	"Headstone Island - Sunken Treasure",
	"Two-Eye Reef - Sunken Treasure",
	"Angular Isles - Sunken Treasure",
	"Boating Course - Sunken Treasure",
	"Five-Star Isles - Sunken Treasure",
	"Defeat Ganondorf",
}
