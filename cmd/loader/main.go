// Command loader bulk-loads glossary entries from a JSON file into DynamoDB.
package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/cloudterm/glossary/pkg/loader"
	"github.com/cloudterm/glossary/pkg/lookup"
)

func main() {

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: loader <entries.json>")
		os.Exit(1)
	}

	data, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read entries file: %v\n", err)
		os.Exit(1)
	}

	var entries []lookup.Entry
	err = json.Unmarshal(data, &entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not parse entries file: %v\n", err)
		os.Exit(1)
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	ddb := dynamodb.New(sess, &aws.Config{Region: aws.String(os.Getenv("AWS_REGION"))})

	err = loader.NewLoader(ddb).Load(entries)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
