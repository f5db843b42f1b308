// Package rules holds the puzzle tables: gated exits, item interactions,
// NPC exchanges, and the confrontation rules that end the game. Tables are
// ordered; the first matching entry wins.
package rules

// Flag and counter names shared between rules and handlers.
const (
	FlagSigilTraced     = "sigil_traced"
	FlagFacadeUnlocked  = "facade_unlocked"
	FlagCratePositioned = "crate_positioned"
	FlagVaultOpen       = "vault_open"
	FlagRoofUnlocked    = "vale_roof_unlocked"
	FlagAntennaFixed    = "antenna_fixed"
	FlagAntennaTuned    = "antenna_tuned"
	FlagKnowsCode       = "knows_gallery_code"
	FlagLoyalDog        = "loyal_dog"
	FlagCardRevealed    = "magnet_card_revealed"
	FlagShadowmarkSeen  = "shadowmark_seen"
	FlagResinSampled    = "resin_sampled"
	FlagTokenWard       = "token_ward"
	FlagTokenFeather    = "token_feather"
	FlagTokenShadow     = "token_shadow"

	CounterSockets = "sockets_inserted"
	CounterEmpathy = "empathy"
	CounterBites   = "bite_count"
)

// Gate IDs referenced by room exits in the content files.
const (
	GateServiceSigil = "service_sigil"
	GateGalleryCode  = "gallery_code"
	GateFireEscape   = "fire_escape"
	GateRoofWards    = "roof_wards"
)

// GateTag returns the short suffix shown after a barred exit direction,
// e.g. "up (requires climbing)". Gates without a tailored tag read "locked".
func GateTag(gate string) string {
	if tag, ok := gateTags[gate]; ok {
		return tag
	}
	return "locked"
}

var gateTags = map[string]string{
	GateFireEscape: "requires climbing",
}

// Ending IDs.
const (
	EndingRedemption   = "redemption"
	EndingContainment  = "containment"
	EndingObliteration = "obliteration"
	EndingDefeat       = "defeat"
)

// KeypadCode opens the gallery facade.
const KeypadCode = "1207"
