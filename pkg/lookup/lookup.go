// Package lookup queries DynamoDB for a glossary term and returns its definition.
package lookup

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// DBGetter is an abstraction (helpful for testing)
type DBGetter interface {
	GetItem(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
}

// Handler is a term looker-upper
type Handler struct {
	ddb DBGetter
}

// Entry is a glossary term and its definition
type Entry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// NewHandler returns a new Handler
func NewHandler(d DBGetter) *Handler {
	return &Handler{ddb: d}
}

// getEntry looks up a term by exact key match, nil entry means not found
func (h *Handler) getEntry(term string) (*Entry, error) {

	input := &dynamodb.GetItemInput{
		TableName: aws.String(os.Getenv("TABLE_NAME")),
		Key: map[string]*dynamodb.AttributeValue{
			"term": {
				S: aws.String(term),
			},
		},
	}

	resp, err := h.ddb.GetItem(input)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %v", err)
	}

	if resp.Item == nil {
		return nil, nil
	}

	var e Entry
	err = dynamodbattribute.UnmarshalMap(resp.Item, &e)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %v", err)
	}

	// echo the key rather than trust the stored attribute
	e.Term = term
	return &e, nil
}

// respond wraps a payload in an API Gateway response
func respond(status int, payload interface{}) events.APIGatewayProxyResponse {

	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}
}

// Handle deals with one lookup request, converting every failure to a response
func (h *Handler) Handle(event *Event) (events.APIGatewayProxyResponse, error) {

	term, err := event.extractTerm()
	if err != nil {
		fmt.Println(err)
		return respond(http.StatusInternalServerError, map[string]string{"error": err.Error()}), nil
	}

	if term == "" {
		return respond(http.StatusBadRequest, map[string]string{"message": "Term parameter is required"}), nil
	}

	entry, err := h.getEntry(term)
	if err != nil {
		fmt.Println(err)
		return respond(http.StatusInternalServerError, map[string]string{"error": err.Error()}), nil
	}

	if entry == nil {
		fmt.Printf("no definition for: %v\n", term)
		return respond(http.StatusNotFound, map[string]string{"message": fmt.Sprintf("Term %q not found", term)}), nil
	}

	return respond(http.StatusOK, entry), nil
}
