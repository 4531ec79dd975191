package digest

import (
	"strings"
	"testing"
)

// Published SHA-256 reference vectors (FIPS 180-4 examples plus the
// well-known empty-input digest).
var vectors = []struct {
	name  string
	input string
	want  string
}{
	{
		name:  "empty",
		input: "",
		want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name:  "abc",
		input: "abc",
		want:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name:  "two blocks",
		input: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		want:  "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name:  "million a",
		input: strings.Repeat("a", 1_000_000),
		want:  "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	},
}

func TestSumHexVectors(t *testing.T) {
	for _, tc := range vectors {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			if _, err := s.Write([]byte(tc.input)); err != nil {
				t.Fatalf("Write: %v", err)
			}

			if got := s.SumHex(); got != tc.want {
				t.Errorf("SumHex() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestWriteChunkBoundaryInsensitive(t *testing.T) {
	input := []byte(strings.Repeat("file-probe digest chunking ", 100))

	whole := New()
	whole.Write(input)
	want := whole.SumHex()

	for _, chunk := range []int{1, 3, 63, 64, 65, 512} {
		s := New()

		for off := 0; off < len(input); off += chunk {
			end := off + chunk
			if end > len(input) {
				end = len(input)
			}
			s.Write(input[off:end])
		}

		if got := s.SumHex(); got != want {
			t.Errorf("chunk size %d: SumHex() = %s, want %s", chunk, got, want)
		}
	}
}

// Inputs of 55, 56 and 64 bytes exercise all three padding branches: marker
// fits with length, marker fits but length does not, and a fresh block.
func TestSumPaddingBoundaries(t *testing.T) {
	wants := map[int]string{
		55: "9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318",
		56: "b35439a4ac6f0948b6d6f9e3c6af0f5f590ce20f1bde7090ef7970686ec6738a",
		64: "ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb",
	}

	for n, want := range wants {
		s := New()
		s.Write([]byte(strings.Repeat("a", n)))

		if got := s.SumHex(); got != want {
			t.Errorf("len %d: SumHex() = %s, want %s", n, got, want)
		}
	}
}
