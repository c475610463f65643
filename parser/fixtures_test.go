package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const petstoreYAML = `openapi: "3.0.3"
info:
  title: Petstore
  version: "1.0.0"
  x-audience: public
servers:
  - url: https://pets.example.com/api
    variables:
      region:
        default: eu
        enum: [eu, us]
security:
  - apiKey: []
tags:
  - name: pets
    description: Everything about pets
paths:
  /pets:
    get:
      operationId: listPets
      tags: [pets]
      parameters:
        - $ref: '#/components/parameters/limit'
      responses:
        "200":
          description: A list of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
          links:
            first:
              operationId: showPet
              parameters:
                petId: $response.body#/0/id
        default:
          $ref: '#/components/responses/Error'
    post:
      operationId: createPet
      security: []
      requestBody:
        $ref: '#/components/requestBodies/NewPet'
      callbacks:
        onCreated:
          '{$request.body#/callbackUrl}':
            post:
              responses:
                "204":
                  description: acknowledged
      responses:
        "201":
          description: created
  /pets/{petId}:
    get:
      operationId: showPet
      responses:
        "200":
          description: a pet
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
components:
  schemas:
    Pet:
      type: object
      required: [id, name]
      properties:
        id:
          type: integer
          format: int64
        name:
          type: string
          example: Rex
        tags:
          type: object
          additionalProperties:
            type: string
        meta:
          type: object
          additionalProperties: false
      x-internal:
        owner: pets-team
        ids: [1, 2.5, true]
    Error:
      type: object
      properties:
        message:
          type: string
  parameters:
    limit:
      name: limit
      in: query
      schema:
        type: integer
        maximum: 100
  responses:
    Error:
      description: unexpected error
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Error'
  requestBodies:
    NewPet:
      required: true
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Pet'
  securitySchemes:
    apiKey:
      type: apiKey
      name: X-API-Key
      in: header
  callbacks:
    shared:
      $ref: '#/components/callbacks/other'
`

// parsePetstore parses the shared fixture and fails the test on error.
func parsePetstore(t *testing.T) *Document {
	t.Helper()
	result, err := ParseBytes([]byte(petstoreYAML), "petstore.yaml")
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	return result.Document
}
