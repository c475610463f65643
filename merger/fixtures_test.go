package merger

import (
	"testing"

	"github.com/erraggy/oasmerge/parser"
	"github.com/stretchr/testify/require"
)

// parseDoc parses an inline YAML fixture.
func parseDoc(t *testing.T, src string) *parser.Document {
	t.Helper()
	result, err := parser.ParseBytes([]byte(src), "fixture.yaml")
	require.NoError(t, err)
	return result.Document
}

// mustMerge merges named inputs with the default configuration.
func mustMerge(t *testing.T, inputs ...Input) *MergeResult {
	t.Helper()
	result, err := New(DefaultConfig()).Merge(inputs)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

const petsA = `openapi: "3.0.3"
info:
  title: Pets
  version: "1.0"
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`

const petsBEqual = `openapi: "3.0.3"
info:
  title: Pets
  version: "1.0"
paths:
  /shelters:
    get:
      operationId: listShelters
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`

const petsBDifferent = `openapi: "3.0.3"
info:
  title: Pets
  version: "1.0"
paths:
  /shelters:
    get:
      operationId: listShelters
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
        age:
          type: integer
    Shelter:
      type: object
      properties:
        pets:
          type: array
          items:
            $ref: "#/components/schemas/Pet"
`

const widgetsWithRoot = `openapi: "3.0.3"
info:
  title: Widgets
  version: "1.0"
servers:
  - url: http://host/api
paths:
  /widgets:
    get:
      operationId: listWidgets
      responses:
        "200":
          description: OK
`

const widgetsWithForeignServer = `openapi: "3.0.3"
info:
  title: Widgets
  version: "1.0"
servers:
  - url: http://host/api
paths:
  /widgets:
    get:
      operationId: listWidgets
      servers:
        - url: http://other
      responses:
        "200":
          description: OK
`

const gadgets = `openapi: "3.0.3"
info:
  title: Widgets
  version: "1.0"
servers:
  - url: http://host
paths:
  /gadgets:
    get:
      operationId: listGadgets
      responses:
        "200":
          description: OK
`
