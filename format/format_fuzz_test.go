package format_test

import (
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/Simula-UiB/CryptaPath/format"
)

// FuzzParse feeds go-fuzz-utils-generated text at Parse, grounded on
// codahale-thyrse's fuzz_transcripts_test.go harness shape: a
// TypeProvider pulls a string out of the raw corpus bytes rather than
// handing them to Parse untouched, so most inputs at least resemble
// line-oriented text instead of being pure binary noise. Parse must
// never panic, and whenever it accepts an input, re-serializing and
// re-parsing the result must succeed too.
func FuzzParse(f *testing.F) {
	f.Add([]byte("2\n1\n0 2\n1+2:(1;0,2)|:(2;0,0)|\n---\n"))
	f.Add([]byte("0\n0\n"))
	f.Add([]byte("not the grammar at all"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}
		text, err := tp.GetString()
		if err != nil {
			t.Skip(err)
		}

		s, err := format.Parse(text)
		if err != nil {
			return
		}

		again := format.Serialize(s)
		if _, err := format.Parse(again); err != nil {
			t.Fatalf("reparsing our own serialization of an accepted input failed: %v", err)
		}
	})
}
