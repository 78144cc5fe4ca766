package eszett_test

import (
	"fmt"
	"strings"

	"github.com/npillmayer/eszett"
	"github.com/npillmayer/eszett/german"
)

func ExampleTransform() {
	s, _ := eszett.Transform("Grüße aus Köln, GROßARTIG!", nil, eszett.Expand)
	fmt.Println(s)
	s, _ = eszett.Transform("Herr Mueller trinkt Quellwasser", nil, eszett.Restore)
	fmt.Println(s)
	// Output:
	// Gruesse aus Koeln, GROSSARTIG!
	// Herr Müller trinkt Quellwasser
}

func ExampleTransform_exclusion() {
	text := "Siehe https://müller.de/über für Details"
	start := strings.Index(text, "https://")
	end := strings.Index(text, " für")
	s, _ := eszett.Transform(text, []eszett.Range{{Start: start, End: end}}, eszett.Expand)
	fmt.Println(s)
	// Output:
	// Siehe https://müller.de/über fuer Details
}

func ExampleWithResolver() {
	words := german.NewWordList("Straße", "Fußgänger")
	s, _ := eszett.Transform("Fussgaenger auf der Strasse sind Massen", nil, eszett.Restore,
		eszett.WithResolver(words))
	fmt.Println(s)
	// Output:
	// Fußgänger auf der Straße sind Massen
}
