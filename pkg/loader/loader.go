// Package loader seeds the glossary table from batches of entries.
package loader

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/cloudterm/glossary/pkg/lookup"
)

// maxBatchItems is the DynamoDB BatchWriteItem limit
const maxBatchItems = 25

// DBBatchWriter is an abstraction (helpful for testing)
type DBBatchWriter interface {
	BatchWriteItem(*dynamodb.BatchWriteItemInput) (*dynamodb.BatchWriteItemOutput, error)
}

// Loader is an entry writer
type Loader struct {
	ddb DBBatchWriter
}

// NewLoader returns a new Loader
func NewLoader(d DBBatchWriter) *Loader {
	return &Loader{ddb: d}
}

// Load writes entries to the db, at most 25 per call
func (l *Loader) Load(entries []lookup.Entry) error {

	for i, e := range entries {
		if e.Term == "" {
			return fmt.Errorf("entry %v has no term", i)
		}
	}

	for start := 0; start < len(entries); start += maxBatchItems {
		end := start + maxBatchItems
		if end > len(entries) {
			end = len(entries)
		}
		err := l.putBatch(entries[start:end])
		if err != nil {
			return err
		}
	}

	fmt.Printf("loaded %v entries\n", len(entries))
	return nil
}

// putBatch writes one batch of entries
func (l *Loader) putBatch(entries []lookup.Entry) error {

	reqs := make([]*dynamodb.WriteRequest, 0, len(entries))
	for _, e := range entries {
		item, err := dynamodbattribute.MarshalMap(e)
		if err != nil {
			return fmt.Errorf("failed to marshal entry %q: %v", e.Term, err)
		}
		reqs = append(reqs, &dynamodb.WriteRequest{
			PutRequest: &dynamodb.PutRequest{Item: item},
		})
	}

	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]*dynamodb.WriteRequest{
			os.Getenv("TABLE_NAME"): reqs,
		},
	}

	resp, err := l.ddb.BatchWriteItem(input)
	if err != nil {
		return fmt.Errorf("failed to write batch: %v", err)
	}

	if len(resp.UnprocessedItems) != 0 {
		return fmt.Errorf("failed to write batch: %v items unprocessed", len(resp.UnprocessedItems[os.Getenv("TABLE_NAME")]))
	}

	return nil
}
