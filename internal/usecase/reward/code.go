package reward

import "strings"

const (
	codeAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codePrefixLen = 8
	codeSuffixLen = 4
	codeSeparator = "-"
)

// generateCode derives a human-readable coupon code from the prize
// name plus a random base-36 suffix, e.g. "5%_OFF-K3XQ".
func (uc *RewardUseCase) generateCode(prizeName string) string {
	prefix := strings.ToUpper(strings.ReplaceAll(prizeName, " ", "_"))
	if len(prefix) > codePrefixLen {
		prefix = prefix[:codePrefixLen]
	}

	suffix := make([]byte, codeSuffixLen)
	uc.rngMu.Lock()
	for i := range suffix {
		suffix[i] = codeAlphabet[uc.rng.Intn(len(codeAlphabet))]
	}
	uc.rngMu.Unlock()

	return prefix + codeSeparator + string(suffix)
}
