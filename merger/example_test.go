package merger_test

import (
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/erraggy/oasmerge/merger"
	"github.com/erraggy/oasmerge/parser"
)

const petsService = `openapi: "3.0.3"
info: {title: Pets, version: "1.0"}
servers:
  - url: https://api.example.com/pets
paths:
  /items:
    get:
      operationId: listItems
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Item"
components:
  schemas:
    Item:
      type: object
      properties:
        name: {type: string}
`

const storeService = `openapi: "3.0.3"
info: {title: Store, version: "1.0"}
servers:
  - url: https://api.example.com/store
paths:
  /items:
    get:
      operationId: listItems
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Item"
components:
  schemas:
    Item:
      type: object
      properties:
        sku: {type: string}
`

func Example() {
	pets, err := parser.ParseBytes([]byte(petsService), "pets.yaml")
	if err != nil {
		log.Fatal(err)
	}
	store, err := parser.ParseBytes([]byte(storeService), "store.yaml")
	if err != nil {
		log.Fatal(err)
	}

	result, err := merger.MergeWithOptions(
		merger.WithNamedDocument("pets.yaml", pets.Document, "/pets"),
		merger.WithNamedDocument("store.yaml", store.Document, "/store"),
	)
	if err != nil {
		log.Fatal(err)
	}

	doc := result.Document
	fmt.Println("title:", doc.Info.Title)
	fmt.Println("server:", doc.Servers[0].URL)
	for _, path := range slices.Sorted(maps.Keys(doc.Paths)) {
		op := doc.Paths[path].Get
		fmt.Printf("%s %s -> %s\n", path, op.OperationID,
			op.Responses.Codes["200"].Content["application/json"].Schema.Ref)
	}
	for _, r := range result.Renames {
		fmt.Println(r)
	}
	// Output:
	// title: Merged documentation
	// server: https://api.example.com
	// /pets/items listItems -> #/components/schemas/Item
	// /store/items listItems1 -> #/components/schemas/Item1
	// paths "/items" -> "/pets/items" (document 1)
	// paths "/items" -> "/store/items" (document 2)
	// operationIds "listItems" -> "listItems1" (document 2)
	// schemas "Item" -> "Item1" (document 2)
}
