package destination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare", input: "lnbc20n1psscehd", want: "lnbc20n1psscehd"},
		{name: "lightning scheme", input: "lightning:lnbc20n1psscehd", want: "lnbc20n1psscehd"},
		{name: "lightning scheme with slashes", input: "lightning://lnbc20n1psscehd", want: "lnbc20n1psscehd"},
		{name: "uppercase scheme", input: "LIGHTNING://lnbc20n1psscehd", want: "lnbc20n1psscehd"},
		{name: "mixed case scheme", input: "Lightning:lnbc20n1psscehd", want: "lnbc20n1psscehd"},
		{name: "bitcoin scheme", input: "bitcoin:1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", want: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
		{name: "bitcoin scheme with slashes", input: "BITCOIN://1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", want: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
		{name: "surrounding whitespace", input: "  lightning:lnbc20n1psscehd \t", want: "lnbc20n1psscehd"},
		{name: "non-breaking spaces", input: "\u00a0lightning:lnbc20n\u00a01psscehd\u00a0", want: "lnbc20n1psscehd"},
		{name: "only one prefix stripped", input: "lightning:bitcoin:x", want: "bitcoin:x"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// Once no recognized prefix remains, another pass must not change
	// anything.
	inputs := []string{
		"lightning://lnbc20n1psscehd",
		"bitcoin:1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa?amount=0.001",
		"  alice@wallet.example ",
		"LNURL1DP68GURN8GHJ7MRWW4EXCTNXD9SHG6NPVCHXXMMD9AKXUATJDSKHQCTE",
	}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}
