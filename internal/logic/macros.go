package logic

// Helper predicates shared across location rules. Each one answers a single
// question about the state; rules compose them. Combat helpers always list a
// sword-free alternative when the vanilla strategy uses one, so swordless
// seeds stay solvable.

// Option-derived switches.

func (r *Ruleset) inSwordlessMode() bool {
	return r.opts.SwordMode == swordlessMode
}

func (r *Ruleset) outsideSwordlessMode() bool {
	return !r.inSwordlessMode()
}

func (r *Ruleset) inRequiredBossesMode() bool {
	return r.opts.RequiredBosses
}

// rematchBossesSkipped is always true: the seed patches out the boss rematch
// gauntlet before Ganondorf.
func (r *Ruleset) rematchBossesSkipped() bool {
	return true
}

func (r *Ruleset) tunerLogicEnabled() bool {
	return r.opts.EnableTunerLogic
}

func (r *Ruleset) obscure1() bool { return r.opts.LogicObscurity.AtLeast(difficultyNormal) }
func (r *Ruleset) obscure2() bool { return r.opts.LogicObscurity.AtLeast(difficultyHard) }
func (r *Ruleset) obscure3() bool { return r.opts.LogicObscurity.AtLeast(difficultyVeryHard) }

func (r *Ruleset) precise1() bool { return r.opts.LogicPrecision.AtLeast(difficultyNormal) }
func (r *Ruleset) precise2() bool { return r.opts.LogicPrecision.AtLeast(difficultyHard) }
func (r *Ruleset) precise3() bool { return r.opts.LogicPrecision.AtLeast(difficultyVeryHard) }

// Progressive items.

func (r *Ruleset) hasHerosSword(s State) bool           { return s.Has("Progressive Sword", 1) }
func (r *Ruleset) hasAnyMasterSword(s State) bool       { return s.Has("Progressive Sword", 2) }
func (r *Ruleset) hasHalfPowerMasterSword(s State) bool { return s.Has("Progressive Sword", 3) }
func (r *Ruleset) hasFullPowerMasterSword(s State) bool { return s.Has("Progressive Sword", 4) }
func (r *Ruleset) hasAnySword(s State) bool             { return r.hasHerosSword(s) }

func (r *Ruleset) hasHerosShield(s State) bool     { return s.Has("Progressive Shield", 1) }
func (r *Ruleset) hasMirrorShield(s State) bool    { return s.Has("Progressive Shield", 2) }
func (r *Ruleset) canAimMirrorShield(s State) bool { return r.hasMirrorShield(s) }

func (r *Ruleset) hasHerosBow(s State) bool { return s.Has("Progressive Bow", 1) }

// Fire and ice arrows arrive together as the second bow upgrade and burn
// magic per shot.
func (r *Ruleset) hasFireArrows(s State) bool {
	return s.Has("Progressive Bow", 2) && r.hasMagicMeter(s)
}

func (r *Ruleset) hasIceArrows(s State) bool {
	return s.Has("Progressive Bow", 2) && r.hasMagicMeter(s)
}

func (r *Ruleset) hasLightArrows(s State) bool {
	return s.Has("Progressive Bow", 3) && r.hasMagicMeter(s)
}

func (r *Ruleset) hasPictoBox(s State) bool       { return s.Has("Progressive Picto Box", 1) }
func (r *Ruleset) hasDeluxePictoBox(s State) bool { return s.Has("Progressive Picto Box", 2) }

func (r *Ruleset) hasMagicMeter(s State) bool        { return s.Has("Progressive Magic Meter", 1) }
func (r *Ruleset) hasMagicMeterUpgrade(s State) bool { return s.Has("Progressive Magic Meter", 2) }

func (r *Ruleset) hasAnyWalletUpgrade(s State) bool { return s.Has("Progressive Wallet", 1) }

// Songs.

func (r *Ruleset) canPlayWindsRequiem(s State) bool {
	return s.Has("Wind Waker", 1) && s.Has("Wind's Requiem", 1)
}

func (r *Ruleset) canPlayBalladOfGales(s State) bool {
	return s.Has("Wind Waker", 1) && s.Has("Ballad of Gales", 1)
}

func (r *Ruleset) canPlayCommandMelody(s State) bool {
	return s.Has("Wind Waker", 1) && s.Has("Command Melody", 1)
}

func (r *Ruleset) canPlayEarthGodsLyric(s State) bool {
	return s.Has("Wind Waker", 1) && s.Has("Earth God's Lyric", 1)
}

func (r *Ruleset) canPlayWindGodsAria(s State) bool {
	return s.Has("Wind Waker", 1) && s.Has("Wind God's Aria", 1)
}

func (r *Ruleset) canPlaySongOfPassing(s State) bool {
	return s.Has("Wind Waker", 1) && s.Has("Song of Passing", 1)
}

// Deku Leaf.

func (r *Ruleset) canFanWithDekuLeaf(s State) bool { return s.Has("Deku Leaf", 1) }

func (r *Ruleset) canFlyWithDekuLeafIndoors(s State) bool {
	return s.Has("Deku Leaf", 1) && r.hasMagicMeter(s)
}

func (r *Ruleset) canFlyWithDekuLeafOutdoors(s State) bool {
	return s.Has("Deku Leaf", 1) && r.hasMagicMeter(s)
}

// Tingle Tuner.

func (r *Ruleset) canUseTingleTuner(s State) bool {
	return r.tunerLogicEnabled() && s.Has("Tingle Tuner", 1)
}

// Tuner bombs cost rupees per use, so logic also wants a wallet upgrade to
// keep the strategy sustainable.
func (r *Ruleset) hasTingleBombs(s State) bool {
	return r.canUseTingleTuner(s) && r.hasAnyWalletUpgrade(s)
}

func (r *Ruleset) canActivateTingleBombTriggersWithoutTingleTuner(s State) bool {
	return s.Has("Bombs", 1) && r.obscure2()
}

// Magic Armor.

func (r *Ruleset) canUseMagicArmor(s State) bool {
	return s.Has("Magic Armor", 1) && r.hasMagicMeter(s)
}

// Shops and farming. Beedle stocks bait and Hyoi Pears from the start, so
// only the bag items gate these.

func (r *Ruleset) canBuyBait(s State) bool      { return true }
func (r *Ruleset) canBuyHyoiPears(s State) bool { return true }

func (r *Ruleset) canFarmLotsOfRupees(s State) bool {
	return s.Has("Spoils Bag", 1) && r.hasAnyWalletUpgrade(s)
}

func (r *Ruleset) canFarmKnightsCrests(s State) bool {
	return s.Has("Grappling Hook", 1) && r.canDefeatDarknuts(s)
}

func (r *Ruleset) canFarmJoyPendants(s State) bool {
	return s.Has("Grappling Hook", 1) || r.canDefeatBokoblins(s)
}

func (r *Ruleset) canFarmGoldenFeathers(s State) bool {
	return s.Has("Grappling Hook", 1) || r.canDefeatKargarocs(s)
}

func (r *Ruleset) canFarmSkullNecklaces(s State) bool {
	return s.Has("Grappling Hook", 1) || r.canDefeatMiniblins(s)
}

func (r *Ruleset) canFarmGreenChuJelly(s State) bool {
	return s.Has("Spoils Bag", 1) && r.canDefeatGreenChuchus(s)
}

func (r *Ruleset) canObtain15BlueChuJelly(s State) bool {
	return s.Has("Spoils Bag", 1) && (s.Has("Grappling Hook", 1) || r.canDefeatRedChuchus(s))
}

func (r *Ruleset) canGetFairies(s State) bool {
	return s.Has("Power Bracelets", 1) || s.Has("Bombs", 1)
}

// Story beats.

func (r *Ruleset) rescuedAryll(s State) bool {
	return r.canGetInsideForsakenFortress(s)
}

func (r *Ruleset) rescuedTingle(s State) bool { return true }

// Combat. The baseline weapons are anything that deals real damage.

func (r *Ruleset) hasBasicWeapon(s State) bool {
	return r.hasAnySword(s) || s.Has("Skull Hammer", 1) || r.hasHerosBow(s) || s.Has("Bombs", 1)
}

func (r *Ruleset) canSwordFightWithOrca(s State) bool { return r.hasAnySword(s) }

func (r *Ruleset) canDefeatKeese(s State) bool {
	return r.hasBasicWeapon(s) || s.Has("Boomerang", 1) || s.Has("Grappling Hook", 1) || s.Has("Hookshot", 1)
}

func (r *Ruleset) canDefeatFireKeese(s State) bool { return r.canDefeatKeese(s) }

func (r *Ruleset) canDefeatMorths(s State) bool { return r.canDefeatKeese(s) }

func (r *Ruleset) canDefeatKargarocs(s State) bool { return r.canDefeatKeese(s) }

func (r *Ruleset) canDefeatBokoblins(s State) bool {
	return r.hasBasicWeapon(s) || s.Has("Boomerang", 1)
}

func (r *Ruleset) canDefeatMiniblins(s State) bool { return r.canDefeatKeese(s) }

func (r *Ruleset) canDefeatMiniblinsEasily(s State) bool { return r.hasBasicWeapon(s) }

func (r *Ruleset) canDefeatRedChuchus(s State) bool {
	return r.hasBasicWeapon(s) || s.Has("Boomerang", 1) || s.Has("Grappling Hook", 1)
}

func (r *Ruleset) canDefeatGreenChuchus(s State) bool { return r.canDefeatRedChuchus(s) }

// Yellow Chuchus shock on contact, so melee needs a stun first.
func (r *Ruleset) canDefeatYellowChuchus(s State) bool {
	return r.hasHerosBow(s) || s.Has("Bombs", 1) || s.Has("Skull Hammer", 1) ||
		(s.Has("Boomerang", 1) && r.hasAnySword(s))
}

func (r *Ruleset) canDefeatDarkChuchus(s State) bool {
	return r.canAimMirrorShield(s) && r.hasBasicWeapon(s)
}

func (r *Ruleset) canStunMagtails(s State) bool {
	return s.Has("Boomerang", 1) || s.Has("Hookshot", 1) || s.Has("Grappling Hook", 1) ||
		r.hasBasicWeapon(s)
}

func (r *Ruleset) canDefeatMagtails(s State) bool { return r.hasBasicWeapon(s) }

func (r *Ruleset) canDefeatPeahats(s State) bool {
	return r.hasBasicWeapon(s) || s.Has("Boomerang", 1)
}

func (r *Ruleset) canRemovePeahatArmor(s State) bool {
	return s.Has("Boomerang", 1) || s.Has("Hookshot", 1) || r.hasBasicWeapon(s)
}

func (r *Ruleset) canDefeatBokoBabas(s State) bool {
	return r.hasBasicWeapon(s) || s.Has("Boomerang", 1)
}

func (r *Ruleset) canDefeatDoorFlowers(s State) bool {
	return r.hasBasicWeapon(s) || s.Has("Boomerang", 1)
}

func (r *Ruleset) canDefeatMothulas(s State) bool { return r.hasBasicWeapon(s) }

func (r *Ruleset) canDefeatWingedMothulas(s State) bool { return r.hasBasicWeapon(s) }

func (r *Ruleset) canDefeatWizzrobes(s State) bool { return r.hasBasicWeapon(s) }

func (r *Ruleset) canDefeatWizzrobesAtRange(s State) bool {
	return r.hasHerosBow(s) || s.Has("Bombs", 1)
}

func (r *Ruleset) canDefeatArmos(s State) bool { return r.hasBasicWeapon(s) }

func (r *Ruleset) canDefeatRedBubbles(s State) bool { return r.hasBasicWeapon(s) }

// Blue Bubbles must be deflated before melee lands; bow and fire arrows work
// outright.
func (r *Ruleset) canDefeatBlueBubbles(s State) bool {
	if r.hasHerosBow(s) || r.hasFireArrows(s) {
		return true
	}
	return (s.Has("Boomerang", 1) || s.Has("Hookshot", 1)) &&
		(r.hasAnySword(s) || s.Has("Skull Hammer", 1) || s.Has("Bombs", 1))
}

func (r *Ruleset) canDefeatDarknuts(s State) bool {
	return r.hasAnySword(s) || s.Has("Skull Hammer", 1)
}

// Mighty Darknuts guard the Master Sword chamber; only a true sword cuts
// through their armor outside swordless mode.
func (r *Ruleset) canDefeatMightyDarknuts(s State) bool {
	if r.inSwordlessMode() {
		return s.Has("Skull Hammer", 1)
	}
	return r.hasAnyMasterSword(s)
}

func (r *Ruleset) canDefeatStalfos(s State) bool {
	return r.hasAnySword(s) || s.Has("Skull Hammer", 1) || s.Has("Bombs", 1)
}

func (r *Ruleset) canDefeatRedeads(s State) bool {
	return r.hasAnySword(s) || s.Has("Skull Hammer", 1)
}

func (r *Ruleset) canDefeatPoes(s State) bool {
	return r.hasAnySword(s) || s.Has("Skull Hammer", 1) || s.Has("Bombs", 1) || r.hasHerosBow(s)
}

func (r *Ruleset) canDefeatFloormasters(s State) bool {
	return r.hasAnySword(s) || s.Has("Skull Hammer", 1) || s.Has("Bombs", 1) || r.hasHerosBow(s)
}

func (r *Ruleset) canDefeatBombchus(s State) bool {
	return r.hasBasicWeapon(s) || s.Has("Boomerang", 1)
}

func (r *Ruleset) canDefeatSeahats(s State) bool {
	return r.hasHerosBow(s) || s.Has("Bombs", 1) || s.Has("Boomerang", 1)
}

func (r *Ruleset) canDefeatBigOctos(s State) bool {
	return r.hasHerosBow(s) || s.Has("Boomerang", 1) || s.Has("Bombs", 1)
}

// The twelve-eyed variant outlasts a base quiver.
func (r *Ruleset) canDefeat12EyeBigOctos(s State) bool {
	return r.hasHerosBow(s) && s.Has("Progressive Quiver", 1)
}

// Field utility.

func (r *Ruleset) canDestroyCannons(s State) bool { return s.Has("Bombs", 1) }

func (r *Ruleset) canMoveBoulders(s State) bool {
	return s.Has("Bombs", 1) || s.Has("Power Bracelets", 1)
}

func (r *Ruleset) canHitDiamondSwitchesAtRange(s State) bool {
	return s.Has("Boomerang", 1) || r.hasHerosBow(s) || s.Has("Hookshot", 1) || s.Has("Bombs", 1)
}

func (r *Ruleset) canCutGrass(s State) bool {
	return r.hasAnySword(s) || s.Has("Boomerang", 1) || s.Has("Bombs", 1) || s.Has("Skull Hammer", 1)
}

func (r *Ruleset) canDestroySeedsHangingByVines(s State) bool {
	return s.Has("Boomerang", 1) || r.hasHerosBow(s) || s.Has("Bombs", 1)
}

// Secret caves and fairy fountains.

func (r *Ruleset) canAccessSavageLabyrinth(s State) bool { return s.Has("Power Bracelets", 1) }

func (r *Ruleset) canAccessOutsetFairyFountain(s State) bool { return s.Has("Power Bracelets", 1) }

func (r *Ruleset) canAccessDragonRoostIslandSecretCave(s State) bool {
	return r.canFlyWithDekuLeafOutdoors(s)
}

func (r *Ruleset) canAccessFireMountainSecretCave(s State) bool { return r.hasIceArrows(s) }

func (r *Ruleset) canAccessIceRingIsleSecretCave(s State) bool { return r.hasFireArrows(s) }

func (r *Ruleset) canAccessIceRingIsleInnerCave(s State) bool {
	return r.canAccessIceRingIsleSecretCave(s) && s.Has("Iron Boots", 1)
}

func (r *Ruleset) canAccessNeedleRockIsleSecretCave(s State) bool { return s.Has("Bombs", 1) }

func (r *Ruleset) canAccessAngularIslesSecretCave(s State) bool {
	return r.canFlyWithDekuLeafOutdoors(s) || s.Has("Hookshot", 1)
}

func (r *Ruleset) canAccessBoatingCourseSecretCave(s State) bool { return s.Has("Bombs", 1) }

func (r *Ruleset) canAccessStoneWatcherIslandSecretCave(s State) bool {
	return s.Has("Power Bracelets", 1)
}

func (r *Ruleset) canAccessOverlookIslandSecretCave(s State) bool { return s.Has("Hookshot", 1) }

// The seagull carries the switch-pressing through the bars.
func (r *Ruleset) canAccessBirdsPeakRockSecretCave(s State) bool {
	return s.Has("Bait Bag", 1) && r.canBuyHyoiPears(s)
}

func (r *Ruleset) canAccessPawprintIsleChuchuCave(s State) bool { return true }

func (r *Ruleset) canAccessPawprintIsleWizzrobeCave(s State) bool {
	return r.canFlyWithDekuLeafOutdoors(s) || s.Has("Hookshot", 1)
}

func (r *Ruleset) canAccessDiamondSteppeIslandWarpMazeCave(s State) bool {
	return s.Has("Hookshot", 1)
}

func (r *Ruleset) canAccessBombIslandSecretCave(s State) bool { return r.canMoveBoulders(s) }

func (r *Ruleset) canAccessRockSpireIsleSecretCave(s State) bool { return s.Has("Bombs", 1) }

func (r *Ruleset) canAccessSharkIslandSecretCave(s State) bool { return s.Has("Iron Boots", 1) }

func (r *Ruleset) canAccessCliffPlateauIslesSecretCave(s State) bool { return true }

func (r *Ruleset) canAccessCliffPlateauIslesInnerCave(s State) bool {
	return r.canAccessCliffPlateauIslesSecretCave(s) &&
		(r.canDefeatBokoBabas(s) || (s.Has("Grappling Hook", 1) && r.obscure1() && r.precise1()))
}

func (r *Ruleset) canAccessHorseshoeIslandSecretCave(s State) bool {
	return r.canFanWithDekuLeaf(s)
}

func (r *Ruleset) canAccessStarIslandSecretCave(s State) bool { return r.canMoveBoulders(s) }

func (r *Ruleset) canAccessCabanaLabyrinth(s State) bool { return s.Has("Cabana Deed", 1) }

func (r *Ruleset) canAccessThornedFairyFountain(s State) bool { return s.Has("Skull Hammer", 1) }

func (r *Ruleset) canAccessEasternFairyFountain(s State) bool { return s.Has("Bombs", 1) }

func (r *Ruleset) canAccessWesternFairyFountain(s State) bool { return r.canMoveBoulders(s) }

func (r *Ruleset) canAccessSouthernFairyFountain(s State) bool { return s.Has("Bombs", 1) }

func (r *Ruleset) canAccessNorthernFairyFountain(s State) bool { return true }

// Region entrances resolved by the reachability layer.

func (r *Ruleset) canAccessForestHaven(s State) bool { return s.CanReachRegion("Forest Haven") }

func (r *Ruleset) canAccessDragonRoostCavern(s State) bool {
	return s.CanReachRegion("Dragon Roost Cavern")
}

func (r *Ruleset) canAccessForbiddenWoods(s State) bool {
	return s.CanReachRegion("Forbidden Woods")
}

func (r *Ruleset) canAccessTowerOfTheGods(s State) bool {
	return s.CanReachRegion("Tower of the Gods")
}

func (r *Ruleset) canGetInsideForsakenFortress(s State) bool {
	return s.CanReachRegion("Forsaken Fortress")
}

func (r *Ruleset) canAccessEarthTemple(s State) bool { return s.CanReachRegion("Earth Temple") }

func (r *Ruleset) canAccessWindTemple(s State) bool { return s.CanReachRegion("Wind Temple") }

func (r *Ruleset) canAccessMasterSwordChamber(s State) bool { return s.CanReachRegion("Hyrule") }

// Dragon Roost Cavern interior.

func (r *Ruleset) canReachDragonRoostCavernGapingMaw(s State) bool {
	return r.canAccessDragonRoostCavern(s) && s.Has("DRC Small Key", 4)
}

func (r *Ruleset) canReachDragonRoostCavernBossStairs(s State) bool {
	return r.canReachDragonRoostCavernGapingMaw(s) &&
		(s.Has("Grappling Hook", 1) || r.canFlyWithDekuLeafOutdoors(s))
}

func (r *Ruleset) canAccessGohmaBossArena(s State) bool {
	return r.canReachDragonRoostCavernBossStairs(s) && s.Has("DRC Big Key", 1)
}

func (r *Ruleset) canDefeatGohma(s State) bool {
	return s.Has("Grappling Hook", 1) && (r.hasAnySword(s) || s.Has("Skull Hammer", 1))
}

// Forbidden Woods interior.

func (r *Ruleset) canAccessForbiddenWoodsMinibossArena(s State) bool {
	return r.canAccessForbiddenWoods(s) &&
		r.canFlyWithDekuLeafIndoors(s) &&
		r.canDefeatBokoBabas(s) &&
		s.Has("Grappling Hook", 1) &&
		s.Has("FW Small Key", 1)
}

func (r *Ruleset) canAccessKalleDemosBossArena(s State) bool {
	return r.canAccessForbiddenWoods(s) &&
		r.canFlyWithDekuLeafIndoors(s) &&
		r.canDefeatBokoBabas(s) &&
		s.Has("Grappling Hook", 1) &&
		s.Has("FW Big Key", 1)
}

func (r *Ruleset) canDefeatKalleDemos(s State) bool {
	return s.Has("Boomerang", 1) && (r.hasAnySword(s) || s.Has("Skull Hammer", 1) || s.Has("Bombs", 1))
}

// Tower of the Gods interior.

func (r *Ruleset) canReachTowerOfTheGodsSecondFloor(s State) bool {
	return r.canAccessTowerOfTheGods(s) && s.Has("Bombs", 1) && s.Has("TotG Small Key", 1)
}

func (r *Ruleset) canBringEastServantOfTheTower(s State) bool {
	return r.canReachTowerOfTheGodsSecondFloor(s) && r.canPlayCommandMelody(s)
}

func (r *Ruleset) canBringWestServantOfTheTower(s State) bool {
	return r.canReachTowerOfTheGodsSecondFloor(s) && r.canPlayCommandMelody(s) &&
		r.canFlyWithDekuLeafIndoors(s)
}

func (r *Ruleset) canBringNorthServantOfTheTower(s State) bool {
	return r.canReachTowerOfTheGodsSecondFloor(s) && r.canPlayCommandMelody(s) &&
		s.Has("TotG Small Key", 2)
}

func (r *Ruleset) canAccessTowerOfTheGodsMinibossArena(s State) bool {
	return r.canReachTowerOfTheGodsSecondFloor(s) && s.Has("TotG Small Key", 2)
}

func (r *Ruleset) canReachTowerOfTheGodsThirdFloor(s State) bool {
	return r.canBringEastServantOfTheTower(s) &&
		r.canBringWestServantOfTheTower(s) &&
		r.canBringNorthServantOfTheTower(s) &&
		r.canPlayWindsRequiem(s)
}

func (r *Ruleset) canAccessGohdanBossArena(s State) bool {
	return r.canReachTowerOfTheGodsThirdFloor(s) && s.Has("TotG Big Key", 1)
}

func (r *Ruleset) canDefeatGohdan(s State) bool {
	return r.hasHerosBow(s) && s.Has("Bombs", 1)
}

// Forsaken Fortress interior.

func (r *Ruleset) canAccessHelmarocKingBossArena(s State) bool {
	return r.canGetInsideForsakenFortress(s) && s.Has("Skull Hammer", 1)
}

func (r *Ruleset) canDefeatHelmarocKing(s State) bool { return s.Has("Skull Hammer", 1) }

func (r *Ruleset) canDefeatPhantomGanon(s State) bool {
	return r.hasAnySword(s) || s.Has("Skull Hammer", 1)
}

func (r *Ruleset) canReachAndDefeatPhantomGanon(s State) bool {
	return r.canGetInsideForsakenFortress(s) && r.canDefeatPhantomGanon(s)
}

// Earth Temple interior.

func (r *Ruleset) canReachEarthTempleRightPath(s State) bool {
	return r.canAccessEarthTemple(s) && r.canPlayCommandMelody(s)
}

func (r *Ruleset) canReachEarthTempleLeftPath(s State) bool {
	return r.canAccessEarthTemple(s) && r.canPlayCommandMelody(s) && s.Has("ET Small Key", 1)
}

func (r *Ruleset) canReachEarthTempleMoblinsAndPoesRoom(s State) bool {
	return r.canReachEarthTempleRightPath(s) && s.Has("Power Bracelets", 1)
}

func (r *Ruleset) canAccessEarthTempleMinibossArena(s State) bool {
	return r.canReachEarthTempleMoblinsAndPoesRoom(s) && s.Has("ET Small Key", 1)
}

func (r *Ruleset) canReachEarthTempleBasement(s State) bool {
	return r.canAccessEarthTempleMinibossArena(s) && r.hasMirrorShield(s)
}

func (r *Ruleset) canReachEarthTempleRedeadHubRoom(s State) bool {
	return r.canReachEarthTempleBasement(s) && s.Has("ET Small Key", 2)
}

func (r *Ruleset) canReachEarthTempleThirdCrypt(s State) bool {
	return r.canReachEarthTempleRedeadHubRoom(s) && s.Has("Power Bracelets", 1)
}

func (r *Ruleset) canReachEarthTempleManyMirrorsRoom(s State) bool {
	return r.canReachEarthTempleRedeadHubRoom(s) && s.Has("ET Small Key", 3)
}

func (r *Ruleset) canAccessJalhallaBossArena(s State) bool {
	return r.canReachEarthTempleManyMirrorsRoom(s) &&
		s.Has("ET Big Key", 1) &&
		r.canPlayEarthGodsLyric(s) &&
		r.canAimMirrorShield(s)
}

func (r *Ruleset) canDefeatJalhalla(s State) bool {
	return r.canAimMirrorShield(s) && s.Has("Power Bracelets", 1) &&
		(r.hasAnySword(s) || s.Has("Skull Hammer", 1))
}

// Wind Temple interior.

func (r *Ruleset) canReachWindTempleKidnappingRoom(s State) bool {
	return r.canAccessWindTemple(s) && r.canPlayCommandMelody(s)
}

func (r *Ruleset) canReachEndOfWindTempleManyCyclonesRoom(s State) bool {
	return r.canReachWindTempleKidnappingRoom(s) &&
		s.Has("Hookshot", 1) &&
		r.canFlyWithDekuLeafIndoors(s)
}

func (r *Ruleset) canOpenWindTempleUpperGiantGrate(s State) bool {
	return r.canReachWindTempleKidnappingRoom(s) &&
		s.Has("Iron Boots", 1) &&
		r.canFanWithDekuLeaf(s) &&
		s.Has("WT Small Key", 1)
}

func (r *Ruleset) canAccessWindTempleMinibossArena(s State) bool {
	return r.canOpenWindTempleUpperGiantGrate(s) && s.Has("WT Small Key", 2)
}

func (r *Ruleset) canActivateWindTempleGiantFan(s State) bool {
	return r.canOpenWindTempleUpperGiantGrate(s) && r.canPlayWindGodsAria(s)
}

func (r *Ruleset) canReachWindTempleTallBasementRoom(s State) bool {
	return r.canActivateWindTempleGiantFan(s) && r.canFlyWithDekuLeafIndoors(s)
}

func (r *Ruleset) canAccessMolgeraBossArena(s State) bool {
	return r.canReachWindTempleTallBasementRoom(s) && s.Has("WT Big Key", 1)
}

func (r *Ruleset) canDefeatMolgera(s State) bool {
	return s.Has("Hookshot", 1) &&
		(r.hasAnySword(s) || s.Has("Skull Hammer", 1) || s.Has("Bombs", 1))
}

// Endgame.

func (r *Ruleset) canReachGanonsTowerPhantomGanonRoom(s State) bool {
	if !s.CanReachRegion("Ganon's Tower") {
		return false
	}
	return r.rematchBossesSkipped() ||
		(r.canDefeatGohma(s) && r.canDefeatKalleDemos(s) && r.canDefeatJalhalla(s) && r.canDefeatMolgera(s))
}

func (r *Ruleset) canReachAndDefeatGanondorf(s State) bool {
	if !r.canReachGanonsTowerPhantomGanonRoom(s) || !r.canDefeatPhantomGanon(s) {
		return false
	}
	if !r.hasLightArrows(s) {
		return false
	}
	if r.inRequiredBossesMode() && !r.canDefeatAllRequiredBosses(s) {
		return false
	}
	if r.inSwordlessMode() {
		return s.Has("Skull Hammer", 1)
	}
	return r.hasFullPowerMasterSword(s)
}
