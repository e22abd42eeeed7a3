package audio

import "testing"

func TestExtractRejectsNonAudio(t *testing.T) {
	if _, err := Extract([]byte("definitely not an mp3 stream")); err == nil {
		t.Error("expected error for tagless bytes")
	}
}
