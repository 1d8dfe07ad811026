// Package stringdex provides an embeddable Go client for the stringdex
// string analysis index: analyzed-string storage keyed by content hash with
// structured and natural-language filtering.
//
//	client, _ := stringdex.New()
//	rec, _ := client.Strings().Analyze(ctx, "Madam I'm Adam")
//	fmt.Println(rec.IsPalindrome) // true
//
//	three := 3
//	recs, _ := client.Strings().List(ctx, stringdex.Filter{WordCount: &three})
//
//	recs, parsed, _ := client.Strings().Query(ctx, "palindromic strings that have three words")
//
// The index is in-memory and lives as long as the client; every client owns
// its own isolated store.
package stringdex
