package wicker_test

import (
	"fmt"
	"log"

	"github.com/aretw0/wicker"
	"github.com/aretw0/wicker/pkg/schema"
)

// Example demonstrates the basic encode/decode cycle over a small
// record schema.
func Example() {
	root := schema.MustRecord("greeting",
		schema.MustPrimitive("id", "u2b"),
		schema.MustPrimitive("text", "cstr"),
	)

	eng, err := wicker.New(root)
	if err != nil {
		log.Fatal(err)
	}

	wire, err := eng.EncodeObject(map[string]any{
		"id":   1,
		"text": "hi",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("% X\n", wire)

	value, err := eng.ParseBuffer(wire)
	if err != nil {
		log.Fatal(err)
	}
	text, _ := value.(*schema.Fields).Get("text")
	fmt.Println(text)

	// Output:
	// 00 01 68 69 00
	// hi
}
