package thread

import "fmt"

// AliasTable pseudonymizes authors for display. An alias is assigned
// the first time an author is seen and stays stable for the lifetime
// of the table (one open thread).
type AliasTable struct {
	next     int
	byAuthor map[string]string
}

func NewAliasTable() *AliasTable {
	return &AliasTable{next: 1, byAuthor: make(map[string]string)}
}

func (t *AliasTable) Alias(author string) string {
	if a, ok := t.byAuthor[author]; ok {
		return a
	}
	a := fmt.Sprintf("User %d", t.next)
	t.next++
	t.byAuthor[author] = a
	return a
}
