package order

import "strings"

// DefaultCardMethods are the stock card-capturing method codes of the host platform.
var DefaultCardMethods = []string{
	"ccsave",
	"authorizenet",
	"authorizenet_directpost",
	"braintree",
	"payflowpro",
	"paypal_direct",
	"verisign",
}

// MethodClassifier resolves method codes to a MethodKind.
type MethodClassifier struct {
	card map[string]struct{}
}

// NewMethodClassifier builds a classifier over the given card-family codes.
// An empty list falls back to DefaultCardMethods.
func NewMethodClassifier(cardCodes []string) *MethodClassifier {
	if len(cardCodes) == 0 {
		cardCodes = DefaultCardMethods
	}
	c := &MethodClassifier{card: make(map[string]struct{}, len(cardCodes))}
	for _, code := range cardCodes {
		c.card[normalizeCode(code)] = struct{}{}
	}
	return c
}

// Classify returns the tagged method for a raw method code.
func (c *MethodClassifier) Classify(code string) PaymentMethod {
	kind := MethodKindOther
	if _, ok := c.card[normalizeCode(code)]; ok {
		kind = MethodKindCard
	}
	return PaymentMethod{Code: code, Kind: kind}
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
