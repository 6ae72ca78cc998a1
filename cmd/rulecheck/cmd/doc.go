// Package cmd implements the rulecheck command tree.
//
//	rulecheck check email user@example.com
//	rulecheck check length-between "héllo" 2 5 -o json
//	rulecheck escape '<b>Tom & Jerry</b>'
//	UNIQUE_BACKEND=pg rulecheck unique --table users --column email taken@example.com
//	UNIQUE_BACKEND=redis rulecheck health
//
// Failed rules are reports, not errors; pass --strict to exit non-zero on them.
// Backend failures and invalid parameters always exit non-zero.
package cmd
