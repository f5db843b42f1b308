package rules

import (
	"strings"
	"testing"

	"github.com/mcross/shadowcircuit/engine/world"
	"github.com/mcross/shadowcircuit/types"
)

// testState builds a world with the entities the puzzle tables reference.
func testState() *world.State {
	defs := &world.Defs{
		Game: types.GameDef{Start: "L01", MaxTurns: 40},
		Rooms: map[string]types.Room{
			"L01": {ID: "L01", Exits: map[string]types.Exit{
				"east":  {To: "L02"},
				"south": {To: "L03", Gate: GateServiceSigil},
				"up":    {To: "L12", Gate: GateFireEscape},
			}, Features: []string{"chalk_sigil"}},
			"L02": {ID: "L02", Exits: map[string]types.Exit{"west": {To: "L01"}},
				Features: []string{"storm_drain"}},
			"L03": {ID: "L03"},
			"L05": {ID: "L05", Exits: map[string]types.Exit{
				"inside": {To: "L07", Gate: GateGalleryCode},
			}, Features: []string{"keypad"}},
			"L06": {ID: "L06", Features: []string{"ward_bench"}},
			"L07": {ID: "L07", Features: []string{"vault_door"}},
			"L11": {ID: "L11", Features: []string{"chain_gate"}},
			"L12": {ID: "L12", Exits: map[string]types.Exit{
				"south": {To: "VALE_ROOF", Gate: GateRoofWards},
			}, Features: []string{"ward_antenna"}},
			"VALE_ROOF": {ID: "VALE_ROOF"},
		},
		Items:    map[string]types.Item{},
		NPCs:     map[string]types.NPC{},
		Features: map[string]string{},
		Gates:    map[string]string{},
	}
	items := []struct {
		id, loc string
		uses    int
	}{
		{"solvent", "L10", 4}, {"mug", "L03", 0}, {"brass_locket", "L05", 0},
		{"resin_threads", "L05", 0}, {"fishing_gear", types.LocNowhere, 0},
		{"ward_chalk", types.LocNowhere, 0}, {"newspaper", "L04", 0},
		{"ward_token", types.LocNowhere, 0}, {"feather_token", types.LocNowhere, 0},
		{"shadow_token", types.LocNowhere, 0}, {"silvered_thread", "L08", 0},
		{"wire_cutter", "L11", 0}, {"counter_ink", types.LocNowhere, 0},
		{"bolt", "L12", 0}, {"police_radio", "L01", 0},
		{"garlic", "L08", 0}, {"rosemary", "L08", 0}, {"hematite", "L06", 0},
		{"note_scrap", "L01", 0}, {"sigil_manual", "L08", 0},
		{"silver_nails", "L07", 0}, {"blueprint", "L09", 0}, {"lens_case", "L09", 0},
		{"aether_resin", types.LocNowhere, 0}, {"case_key", types.LocNowhere, 0},
		{"tarot_coin", "L02", 0}, {"string", "L06", 0},
		{"empty_jar", "L06", 0}, {"resin_sample", types.LocNowhere, 0},
		{"bone", "L11", 0}, {"rag", "L10", 0},
	}
	for _, it := range items {
		name := strings.ReplaceAll(it.id, "_", " ")
		defs.Items[it.id] = types.Item{ID: it.id, Name: name, Portable: true, Location: it.loc, Uses: it.uses}
		defs.ItemOrder = append(defs.ItemOrder, it.id)
	}
	locket := defs.Items["brass_locket"]
	locket.Stuck = true
	defs.Items["brass_locket"] = locket
	for _, n := range []struct{ id, home string }{
		{"lupita", "L04"}, {"reef", "L06"}, {"tia_sol", "L08"},
		{"gasket", "L11"}, {"ezra_vale", "VALE_ROOF"},
	} {
		defs.NPCs[n.id] = types.NPC{ID: n.id, Name: n.id, Home: n.home}
		defs.NPCOrder = append(defs.NPCOrder, n.id)
	}
	return world.NewState(defs)
}

func carry(s *world.State, ids ...string) {
	for _, id := range ids {
		s.Acquire(id)
	}
}

func TestSolventFreesLocket(t *testing.T) {
	s := testState()
	s.Player.Location = "L05"
	carry(s, "solvent")

	r := FindUse(s, "solvent", "resin_threads")
	if r == nil {
		t.Fatal("no rule for solvent on resin threads")
	}
	r.Fire(s)
	if s.Items["brass_locket"].Stuck {
		t.Error("locket still stuck after solvent")
	}
	if !s.HasItem("brass_locket") {
		t.Error("locket not taken after solvent")
	}
	if s.Items["solvent"].Uses != 3 {
		t.Errorf("solvent uses = %d, want 3", s.Items["solvent"].Uses)
	}
}

func TestSolventDryBottle(t *testing.T) {
	s := testState()
	s.Player.Location = "L05"
	carry(s, "solvent")
	s.Items["solvent"].Uses = 0

	r := FindUse(s, "solvent", "resin_threads")
	lines := r.Fire(s)
	if !strings.Contains(strings.Join(lines, " "), "dry") {
		t.Errorf("expected dry-bottle message, got %v", lines)
	}
	if !s.Items["brass_locket"].Stuck {
		t.Error("locket freed by empty solvent")
	}
}

func TestMugMeltsResinAndIsConsumed(t *testing.T) {
	s := testState()
	s.Player.Location = "L05"
	carry(s, "mug")

	r := FindUse(s, "mug", "brass_locket")
	if r == nil {
		t.Fatal("no rule for mug on locket")
	}
	r.Fire(s)
	if s.Items["brass_locket"].Stuck {
		t.Error("locket still stuck after hot mug")
	}
	if s.HasItem("mug") || s.Items["mug"].Location != types.LocNowhere {
		t.Error("mug not consumed")
	}
	// Resin already melted: the mug rule's guard no longer matches.
	carry(s, "mug")
	if FindUse(s, "mug", "brass_locket") != nil {
		t.Error("mug rule matched with resin already melted")
	}
}

func TestFishingGearGrantsChalkOnce(t *testing.T) {
	s := testState()
	s.Player.Location = "L02"
	carry(s, "fishing_gear")

	r := FindUse(s, "fishing_gear", "storm_drain")
	if r == nil {
		t.Fatal("no rule for fishing gear on drain")
	}
	r.Fire(s)
	if !s.HasItem("ward_chalk") {
		t.Error("ward chalk not granted")
	}

	// Second cast hits the fallback rule.
	r = FindUse(s, "fishing_gear", "storm_drain")
	lines := r.Fire(s)
	if !strings.Contains(strings.Join(lines, " "), "gum") {
		t.Errorf("expected fallback line, got %v", lines)
	}
}

func TestWardChalkOnBench(t *testing.T) {
	s := testState()
	s.Player.Location = "L06"
	carry(s, "ward_chalk")

	r := FindUse(s, "ward_chalk", "ward_bench")
	r.Fire(s)
	if !s.HasItem("ward_token") || !s.Flag(FlagTokenWard) {
		t.Error("ward token not granted")
	}
}

func TestThreadOnGasket(t *testing.T) {
	s := testState()
	s.Player.Location = "L11"
	carry(s, "silvered_thread")

	r := FindUse(s, "silvered_thread", "gasket")
	r.Fire(s)
	if !s.HasItem("shadow_token") {
		t.Error("shadow token not granted")
	}
	if !s.Flag(FlagLoyalDog) {
		t.Error("loyal_dog not set")
	}
	if s.HasItem("silvered_thread") {
		t.Error("thread not consumed")
	}
}

func TestWireCutterOpensRoofPath(t *testing.T) {
	s := testState()
	s.Player.Location = "L11"
	carry(s, "wire_cutter")

	r := FindUse(s, "wire_cutter", "chain_gate")
	r.Fire(s)
	if s.Rooms["L12"].Exits["south"].Gate != "" {
		t.Error("roof gate still sealed after wire cutter")
	}
}

func TestTraceSigil(t *testing.T) {
	t.Run("with manual costs one will", func(t *testing.T) {
		s := testState()
		carry(s, "sigil_manual")
		s.Player.Will = 1
		TraceSigil(s)
		if s.Rooms["L01"].Exits["south"].Gate != "" {
			t.Error("gate not cleared")
		}
		if s.Player.Will != 0 {
			t.Errorf("will = %d, want 0", s.Player.Will)
		}
	})
	t.Run("without aids costs two will", func(t *testing.T) {
		s := testState()
		s.Player.Will = 2
		TraceSigil(s)
		if s.Rooms["L01"].Exits["south"].Gate != "" {
			t.Error("gate not cleared")
		}
		if s.Player.Will != 0 {
			t.Errorf("will = %d, want 0", s.Player.Will)
		}
	})
	t.Run("insufficient will fails", func(t *testing.T) {
		s := testState()
		s.Player.Will = 1
		lines := TraceSigil(s)
		if s.Rooms["L01"].Exits["south"].Gate == "" {
			t.Error("gate cleared without enough will")
		}
		if !strings.Contains(strings.Join(lines, " "), "WILL") {
			t.Errorf("expected will failure message, got %v", lines)
		}
	})
	t.Run("already traced", func(t *testing.T) {
		s := testState()
		s.ClearGate("L01", "south")
		lines := TraceSigil(s)
		if !strings.Contains(strings.Join(lines, " "), "already") {
			t.Errorf("expected already-dispelled message, got %v", lines)
		}
	})
	t.Run("wrong room", func(t *testing.T) {
		s := testState()
		s.Player.Location = "L02"
		lines := TraceSigil(s)
		if !strings.Contains(strings.Join(lines, " "), "No sigil") {
			t.Errorf("expected no-sigil message, got %v", lines)
		}
	})
}

func TestEnterCode(t *testing.T) {
	s := testState()
	s.Player.Location = "L05"

	EnterCode(s, "0000")
	if s.Rooms["L05"].Exits["inside"].Gate == "" {
		t.Error("wrong code cleared the gate")
	}

	EnterCode(s, "1207")
	if s.Rooms["L05"].Exits["inside"].Gate != "" {
		t.Error("correct code did not clear the gate")
	}

	s.Player.Location = "L02"
	lines := EnterCode(s, "1207")
	if !strings.Contains(strings.Join(lines, " "), "no keypad") {
		t.Errorf("expected no-keypad message, got %v", lines)
	}
}

func TestCraftCounterInk(t *testing.T) {
	s := testState()
	lines := CraftCounterInk(s)
	if s.HasItem("counter_ink") {
		t.Error("ink crafted without ingredients")
	}
	if !strings.Contains(strings.Join(lines, " "), "GARLIC") {
		t.Errorf("expected missing-ingredients message, got %v", lines)
	}

	carry(s, "garlic", "rosemary", "hematite")
	CraftCounterInk(s)
	if !s.HasItem("counter_ink") {
		t.Error("ink not crafted")
	}
	for _, id := range []string{"garlic", "rosemary", "hematite"} {
		if s.HasItem(id) {
			t.Errorf("%s not consumed", id)
		}
	}
	if s.Counter(CounterEmpathy) != 1 {
		t.Errorf("empathy = %d, want 1", s.Counter(CounterEmpathy))
	}
}

func TestAntennaSequence(t *testing.T) {
	s := testState()
	s.Player.Location = "L12"

	lines := TuneAntenna(s)
	if !strings.Contains(strings.Join(lines, " "), "Secure it first") {
		t.Errorf("tuning before fixing should fail, got %v", lines)
	}

	carry(s, "bolt")
	r := FindUse(s, "bolt", "ward_antenna")
	if r == nil {
		t.Fatal("no rule for bolt on antenna")
	}
	r.Fire(s)
	if !s.Flag(FlagAntennaFixed) {
		t.Error("antenna not fixed")
	}

	TuneAntenna(s)
	if s.Rooms["L12"].Exits["south"].Gate != "" {
		t.Error("roof gate still sealed after tuning")
	}

	lines = TuneAntenna(s)
	if !strings.Contains(strings.Join(lines, " "), "already tuned") {
		t.Errorf("second tune should report already tuned, got %v", lines)
	}
}

func TestInsertTokensOpenVault(t *testing.T) {
	s := testState()
	s.Player.Location = "L07"
	carry(s, "ward_token", "feather_token", "shadow_token")

	InsertToken(s, "ward")
	InsertToken(s, "feather")
	if s.Flag(FlagVaultOpen) {
		t.Fatal("vault opened with only two tokens")
	}
	InsertToken(s, "shadow")
	if !s.Flag(FlagVaultOpen) {
		t.Fatal("vault not open after three tokens")
	}
	if !s.HasItem("aether_resin") || !s.HasItem("case_key") {
		t.Error("vault contents not granted")
	}

	// A fourth token is refused.
	carry(s, "ward_token")
	lines := InsertToken(s, "ward")
	if !strings.Contains(strings.Join(lines, " "), "full") {
		t.Errorf("expected refusal, got %v", lines)
	}
	if !s.HasItem("ward_token") {
		t.Error("refused token was consumed")
	}
}

func TestInsertTokenErrors(t *testing.T) {
	s := testState()
	s.Player.Location = "L07"
	lines := InsertToken(s, "ward")
	if !strings.Contains(strings.Join(lines, " "), "don't have") {
		t.Errorf("expected missing-token message, got %v", lines)
	}
	lines = InsertToken(s, "moon")
	if !strings.Contains(strings.Join(lines, " "), "Unknown token") {
		t.Errorf("expected unknown-token message, got %v", lines)
	}
}

func TestPushCrate(t *testing.T) {
	s := testState()
	PushCrate(s)
	if s.Rooms["L01"].Exits["up"].Gate != "" {
		t.Error("fire escape still gated after pushing crate")
	}
	lines := PushCrate(s)
	if !strings.Contains(strings.Join(lines, " "), "already") {
		t.Errorf("second push should be a no-op, got %v", lines)
	}
}

func TestCombineFishingGear(t *testing.T) {
	s := testState()
	carry(s, "string", "tarot_coin")

	r := FindCombine("tarot_coin", "string")
	if r == nil {
		t.Fatal("no combine rule for coin and string")
	}
	r.Fire(s)
	if !s.HasItem("fishing_gear") {
		t.Error("fishing gear not created")
	}
	if s.HasItem("string") || s.HasItem("tarot_coin") {
		t.Error("components not consumed")
	}

	if FindCombine("garlic", "bone") != nil {
		t.Error("unexpected combine rule for garlic and bone")
	}
}

func TestGiveRules(t *testing.T) {
	t.Run("mug to reef grants hematite", func(t *testing.T) {
		s := testState()
		s.Player.Location = "L06"
		s.Items["hematite"].Location = "L99"
		carry(s, "mug")
		r := FindGive("mug", "reef")
		if r == nil {
			t.Fatal("no give rule for mug to reef")
		}
		r.Fire(s)
		if !s.HasItem("hematite") {
			t.Error("hematite not granted")
		}
		if s.HasItem("mug") {
			t.Error("mug still carried")
		}
		if s.NPCs["reef"].Trust != 1 {
			t.Errorf("reef trust = %d, want 1", s.NPCs["reef"].Trust)
		}
	})
	t.Run("bone to loyal gasket opens roof path", func(t *testing.T) {
		s := testState()
		s.Player.Location = "L11"
		s.SetFlag(FlagLoyalDog, true)
		carry(s, "bone")
		r := FindGive("bone", "gasket")
		r.Fire(s)
		if s.Rooms["L12"].Exits["south"].Gate != "" {
			t.Error("roof gate still sealed")
		}
	})
	t.Run("bone without thread is just a treat", func(t *testing.T) {
		s := testState()
		s.Player.Location = "L11"
		carry(s, "bone")
		r := FindGive("bone", "gasket")
		lines := r.Fire(s)
		if s.Rooms["L12"].Exits["south"].Gate == "" {
			t.Error("roof gate cleared without the thread tied")
		}
		if !strings.Contains(strings.Join(lines, " "), "crunches") {
			t.Errorf("expected treat line, got %v", lines)
		}
	})
}

func TestMesmerizeRules(t *testing.T) {
	s := testState()
	if r := FindMesmerize("lupita"); r != nil {
		r.Fire(s)
		if !s.Flag(FlagKnowsCode) {
			t.Error("lupita did not reveal the code")
		}
	} else {
		t.Error("no mesmerize rule for lupita")
	}
	if r := FindMesmerize("tia_sol"); r != nil {
		r.Fire(s)
		if s.NPCs["tia_sol"].Trust != -2 {
			t.Errorf("tia trust = %d, want -2", s.NPCs["tia_sol"].Trust)
		}
	} else {
		t.Error("no mesmerize rule for tia_sol")
	}
	if FindMesmerize("gasket") != nil {
		t.Error("unexpected mesmerize rule for gasket")
	}
}

func TestConfrontOrder(t *testing.T) {
	// With everything in hand, silver nails take the containment path.
	s := testState()
	s.Player.Location = "VALE_ROOF"
	s.SetFlag(FlagVaultOpen, true)
	carry(s, "silver_nails", "lens_case", "blueprint", "brass_locket", "counter_ink")
	s.AddCounter(CounterEmpathy, 1)

	if r := FindConfront(s, "silver_nails"); r == nil || r.Ending != EndingContainment {
		t.Errorf("silver nails rule = %+v, want containment", r)
	}
	if r := FindConfront(s, "lens_case"); r == nil || r.Ending != EndingObliteration {
		t.Errorf("lens case rule = %+v, want obliteration", r)
	}
	if r := FindConfront(s, "brass_locket"); r == nil || r.Ending != EndingRedemption {
		t.Errorf("locket rule = %+v, want redemption", r)
	}
}

func TestConfrontGuards(t *testing.T) {
	s := testState()
	carry(s, "silver_nails", "lens_case", "brass_locket", "counter_ink")

	if FindConfront(s, "silver_nails") != nil {
		t.Error("containment fired without the vault open")
	}
	if FindConfront(s, "lens_case") != nil {
		t.Error("obliteration fired without the blueprint")
	}
	if FindConfront(s, "brass_locket") != nil {
		t.Error("redemption fired without empathy")
	}
	s.AddCounter(CounterEmpathy, 1)
	if r := FindConfront(s, "brass_locket"); r == nil || r.Ending != EndingRedemption {
		t.Error("redemption did not fire with empathy and ink")
	}
}
