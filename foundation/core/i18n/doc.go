// File: doc.go
// Title: Translation Table Package Documentation
// Description: Package i18n holds the key to display-text translation table
//              loaded from the "Translations" section of a resource.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-11-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-11-03 v0.2.0: Flat Table loaded from JSON resources via jsontok

/*
Package i18n provides the translation table used for every user-facing text.

A resource is a JSON document with a "Translations" object whose members map
text ids to display text:

	{
	  "Translations": {
	    "Message.Success": "The operation completed successfully.",
	    "Message.InvalidCommandParameter": "Invalid command line parameter."
	  }
	}

Members whose value is not a string are skipped. Within the section the first
occurrence of a key wins. TOML and YAML resources are accepted as well; their
[Translations] table is flattened with dot notation, so a nested
[Translations.Message] table with a Success key becomes "Message.Success".

Loading is all-or-nothing: a resource that fails to parse leaves the table as
it was. A Table is not synchronized. Load it before readers start, or guard
reloads with a lock.

	table := i18n.NewTable()
	if err := table.LoadFile("translations.json"); err != nil {
		// the previous contents are still in place
	}
	fmt.Println(table.T("Message.Success"))
*/
package i18n
