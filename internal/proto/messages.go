package proto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GameName is the game identifier carried by the connect handshake.
const GameName = "The Wind Waker"

// ItemsHandlingAll asks the server to relay every item, including the ones
// placed in our own world.
const ItemsHandlingAll = 0b111

// Command identifiers for multiworld payloads.
const (
	CmdRoomInfo          = "RoomInfo"
	CmdConnect           = "Connect"
	CmdConnectUpdate     = "ConnectUpdate"
	CmdConnected         = "Connected"
	CmdConnectionRefused = "ConnectionRefused"
	CmdReceivedItems     = "ReceivedItems"
	CmdLocationChecks    = "LocationChecks"
	CmdStatusUpdate      = "StatusUpdate"
	CmdSync              = "Sync"
	CmdBounce            = "Bounce"
	CmdBounced           = "Bounced"
	CmdPrintJSON         = "PrintJSON"
)

// TagDeathLink marks a session that shares deaths with the rest of the room.
const TagDeathLink = "DeathLink"

// ClientStatus reports the session's progress back to the server.
type ClientStatus int

// Client status values understood by the server.
const (
	StatusUnknown ClientStatus = 0
	StatusReady   ClientStatus = 10
	StatusPlaying ClientStatus = 20
	StatusGoal    ClientStatus = 30
)

// NetworkVersion identifies the protocol revision spoken by a peer.
type NetworkVersion struct {
	Major int    `json:"major"`
	Minor int    `json:"minor"`
	Build int    `json:"build"`
	Class string `json:"class"`
}

// DefaultVersion is the protocol revision this client speaks.
func DefaultVersion() NetworkVersion {
	return NetworkVersion{Major: 0, Minor: 5, Build: 0, Class: "Version"}
}

// NetworkItem is one granted item inside a ReceivedItems payload.
type NetworkItem struct {
	Item     int64 `json:"item"`
	Location int64 `json:"location"`
	Player   int   `json:"player"`
	Flags    int   `json:"flags"`
}

// Item flag bits carried on NetworkItem.Flags.
const (
	FlagProgression = 0b001
	FlagUseful      = 0b010
	FlagTrap        = 0b100
)

// NetworkPlayer describes one slot in the connected room.
type NetworkPlayer struct {
	Team  int    `json:"team"`
	Slot  int    `json:"slot"`
	Alias string `json:"alias"`
	Name  string `json:"name"`
}

// RoomInfo is the server's greeting after the socket opens.
type RoomInfo struct {
	Cmd      string         `json:"cmd"`
	Version  NetworkVersion `json:"version"`
	Games    []string       `json:"games"`
	Password bool           `json:"password"`
	SeedName string         `json:"seed_name"`
	Time     float64        `json:"time"`
}

// Connect requests a slot in the room.
type Connect struct {
	Cmd           string         `json:"cmd"`
	Game          string         `json:"game"`
	Name          string         `json:"name"`
	Password      string         `json:"password"`
	UUID          string         `json:"uuid"`
	Version       NetworkVersion `json:"version"`
	ItemsHandling int            `json:"items_handling"`
	Tags          []string       `json:"tags"`
	SlotData      bool           `json:"slot_data"`
}

// ConnectUpdate swaps the session's tags after the handshake, for example to
// opt in to death-link bounces.
type ConnectUpdate struct {
	Cmd  string   `json:"cmd"`
	Tags []string `json:"tags"`
}

// SlotData carries the per-world settings the generator baked into the seed.
type SlotData struct {
	DeathLink int `json:"death_link"`
}

// Connected confirms the slot assignment.
type Connected struct {
	Cmd              string          `json:"cmd"`
	Team             int             `json:"team"`
	Slot             int             `json:"slot"`
	Players          []NetworkPlayer `json:"players"`
	MissingLocations []int64         `json:"missing_locations"`
	CheckedLocations []int64         `json:"checked_locations"`
	SlotData         SlotData        `json:"slot_data"`
}

// ConnectionRefused reports why a connect attempt was rejected.
type ConnectionRefused struct {
	Cmd    string   `json:"cmd"`
	Errors []string `json:"errors"`
}

// ReceivedItems delivers items starting at the given running index.
type ReceivedItems struct {
	Cmd   string        `json:"cmd"`
	Index int           `json:"index"`
	Items []NetworkItem `json:"items"`
}

// LocationChecks reports locations the player has newly checked.
type LocationChecks struct {
	Cmd       string  `json:"cmd"`
	Locations []int64 `json:"locations"`
}

// StatusUpdate reports the session's progress, including goal completion.
type StatusUpdate struct {
	Cmd    string       `json:"cmd"`
	Status ClientStatus `json:"status"`
}

// Sync asks the server to resend the full received-items list.
type Sync struct {
	Cmd string `json:"cmd"`
}

// DeathLinkData is the payload of a death-link bounce.
type DeathLinkData struct {
	Time   float64 `json:"time"`
	Source string  `json:"source"`
	Cause  string  `json:"cause,omitempty"`
}

// Bounce broadcasts a payload to every session matching the given tags.
type Bounce struct {
	Cmd   string        `json:"cmd"`
	Games []string      `json:"games,omitempty"`
	Slots []int         `json:"slots,omitempty"`
	Tags  []string      `json:"tags,omitempty"`
	Data  DeathLinkData `json:"data"`
}

// Bounced is a relayed bounce from another session.
type Bounced struct {
	Cmd   string        `json:"cmd"`
	Games []string      `json:"games,omitempty"`
	Slots []int         `json:"slots,omitempty"`
	Tags  []string      `json:"tags,omitempty"`
	Data  DeathLinkData `json:"data"`
}

// IsDeathLink reports whether the bounce carries a death from another player.
func (b Bounced) IsDeathLink() bool {
	for _, tag := range b.Tags {
		if tag == TagDeathLink {
			return true
		}
	}
	return false
}

// PrintJSON carries chat and event text broken into parts.
type PrintJSON struct {
	Cmd  string      `json:"cmd"`
	Type string      `json:"type"`
	Data []TextPart  `json:"data"`
	Item NetworkItem `json:"item"`
}

// TextPart is one fragment of a PrintJSON message.
type TextPart struct {
	Text string `json:"text"`
	Type string `json:"type,omitempty"`
}

// Text flattens the message parts into a single line.
func (p PrintJSON) Text() string {
	var sb strings.Builder
	for _, part := range p.Data {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// EncodeConnect renders a connect handshake envelope.
func EncodeConnect(msg Connect) ([]byte, error) {
	msg.Cmd = CmdConnect
	if msg.Game == "" {
		msg.Game = GameName
	}
	if msg.Version == (NetworkVersion{}) {
		msg.Version = DefaultVersion()
	}
	return json.Marshal([]Connect{msg})
}

// EncodeConnectUpdate renders a tag update envelope.
func EncodeConnectUpdate(tags []string) ([]byte, error) {
	return json.Marshal([]ConnectUpdate{{Cmd: CmdConnectUpdate, Tags: tags}})
}

// EncodeLocationChecks renders a location report envelope.
func EncodeLocationChecks(locations []int64) ([]byte, error) {
	return json.Marshal([]LocationChecks{{Cmd: CmdLocationChecks, Locations: locations}})
}

// EncodeStatusUpdate renders a status report envelope.
func EncodeStatusUpdate(status ClientStatus) ([]byte, error) {
	return json.Marshal([]StatusUpdate{{Cmd: CmdStatusUpdate, Status: status}})
}

// EncodeSync renders a sync request envelope.
func EncodeSync() ([]byte, error) {
	return json.Marshal([]Sync{{Cmd: CmdSync}})
}

// EncodeDeathLink renders a death-link bounce envelope.
func EncodeDeathLink(data DeathLinkData) ([]byte, error) {
	bounce := Bounce{
		Cmd:  CmdBounce,
		Tags: []string{TagDeathLink},
		Data: data,
	}
	return json.Marshal([]Bounce{bounce})
}

// Frame is one command pulled out of an envelope, still undecoded.
type Frame struct {
	Cmd string
	Raw json.RawMessage
}

// DecodeEnvelope splits a server payload into its tagged commands.
func DecodeEnvelope(payload []byte) ([]Frame, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(payload, &raws); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	frames := make([]Frame, 0, len(raws))
	for i, raw := range raws {
		var head struct {
			Cmd string `json:"cmd"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return nil, fmt.Errorf("decode command %d: %w", i, err)
		}
		if head.Cmd == "" {
			return nil, fmt.Errorf("command %d carries no cmd tag", i)
		}
		frames = append(frames, Frame{Cmd: head.Cmd, Raw: raw})
	}
	return frames, nil
}

// DecodeRoomInfo parses a RoomInfo frame.
func DecodeRoomInfo(raw json.RawMessage) (RoomInfo, error) {
	var msg RoomInfo
	err := json.Unmarshal(raw, &msg)
	return msg, err
}

// DecodeConnected parses a Connected frame.
func DecodeConnected(raw json.RawMessage) (Connected, error) {
	var msg Connected
	err := json.Unmarshal(raw, &msg)
	return msg, err
}

// DecodeConnectionRefused parses a ConnectionRefused frame.
func DecodeConnectionRefused(raw json.RawMessage) (ConnectionRefused, error) {
	var msg ConnectionRefused
	err := json.Unmarshal(raw, &msg)
	return msg, err
}

// DecodeReceivedItems parses a ReceivedItems frame.
func DecodeReceivedItems(raw json.RawMessage) (ReceivedItems, error) {
	var msg ReceivedItems
	err := json.Unmarshal(raw, &msg)
	return msg, err
}

// DecodeBounced parses a Bounced frame.
func DecodeBounced(raw json.RawMessage) (Bounced, error) {
	var msg Bounced
	err := json.Unmarshal(raw, &msg)
	return msg, err
}

// DecodePrintJSON parses a PrintJSON frame.
func DecodePrintJSON(raw json.RawMessage) (PrintJSON, error) {
	var msg PrintJSON
	err := json.Unmarshal(raw, &msg)
	return msg, err
}
