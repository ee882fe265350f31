package protocol

import "testing"

func TestEnvelopeRoundTrip(t *testing.T) {
	b, err := Encode(MsgCommand, Command{Action: ActionUp})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgCommand {
		t.Fatalf("envelope type = %q, want %q", env.T, MsgCommand)
	}
	cmd, err := DecodePayload[Command](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if cmd.Action != ActionUp {
		t.Fatalf("action = %q, want %q", cmd.Action, ActionUp)
	}
}

func TestEncodeRejectsInvalidInput(t *testing.T) {
	if _, err := Encode("", Hello{}); err == nil {
		t.Fatalf("expected error for empty envelope type")
	}
	if _, err := Encode(MsgHello, nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty envelope bytes")
	}
	if _, err := DecodePayload[Hello](Envelope{T: MsgHello}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestTimingSanity(t *testing.T) {
	if SimTickHz <= 0 || BroadcastHz <= 0 {
		t.Fatalf("timing constants must be > 0")
	}
	if SimTickHz%BroadcastHz != 0 {
		t.Fatalf("SimTickHz %% BroadcastHz != 0 (%d %% %d)", SimTickHz, BroadcastHz)
	}
}
