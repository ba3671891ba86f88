package service

import (
	"strings"

	"banking-ledger/internal/core/domain"
)

// defaultHandbook is the static bank policy handbook. Topics are stored in
// snake_case; search treats underscores as spaces.
var defaultHandbook = []domain.Policy{
	{
		Topic:   "withdrawal_limit",
		Content: "Daily withdrawal limit is $500 for Basic accounts and $2,000 for Premium accounts.",
	},
	{
		Topic:   "overdraft_fees",
		Content: "Overdraft fee is $35 per transaction. Interest is charged at 15% APR on negative balances.",
	},
	{
		Topic:   "international_transfer",
		Content: "International transfers cost $25 fixed fee plus 1% currency conversion margin. Takes 3-5 business days.",
	},
	{
		Topic:   "fraud_protection",
		Content: "We monitor all transactions. If you suspect fraud, use the 'freeze_account' tool immediately. Liability is $0 if reported within 24 hours.",
	},
	{
		Topic:   "support_hours",
		Content: "Live support is available 9 AM - 5 PM EST, Monday to Friday. Automated support is 24/7.",
	},
}

// PolicyServiceImpl implements ports.PolicyService with a case-insensitive
// substring match over the static handbook. Stateless and safe for
// concurrent use.
type PolicyServiceImpl struct {
	handbook []domain.Policy
}

// NewPolicyService creates a PolicyServiceImpl over the built-in handbook.
func NewPolicyService() *PolicyServiceImpl {
	return &PolicyServiceImpl{handbook: defaultHandbook}
}

// Search returns every policy whose topic or content contains the query.
// Topics in results are upper-cased for display.
func (s *PolicyServiceImpl) Search(query string) []domain.Policy {
	q := strings.ToLower(query)

	matches := make([]domain.Policy, 0)
	for _, p := range s.handbook {
		topic := strings.ReplaceAll(p.Topic, "_", " ")
		if strings.Contains(topic, q) || strings.Contains(strings.ToLower(p.Content), q) {
			matches = append(matches, domain.Policy{
				Topic:   strings.ToUpper(p.Topic),
				Content: p.Content,
			})
		}
	}
	return matches
}
