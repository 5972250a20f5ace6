// Package record defines labeled records and a SQLite-backed store for them.
//
// A Record is an identifier plus a set of string keywords; the store persists
// records together with their current partition assignment. Assignments are
// written with replace semantics: saving a new partition clears every stored
// assignment before writing the new one.
//
//	store, err := record.Open("records.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	records, err := store.LoadAll()
package record
