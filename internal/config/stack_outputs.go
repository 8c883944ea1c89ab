package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StackOutputs holds the deployed stack values needed by integration tests
type StackOutputs struct {
	APIURL    string
	TableName string
}

type stackOutputEntry struct {
	OutputKey   string `json:"OutputKey"`
	OutputValue string `json:"OutputValue"`
}

// LoadStackOutputs reads a CloudFormation outputs file, as written by
// `aws cloudformation describe-stacks --query Stacks[0].Outputs`. Only the
// "Table" and "API" outputs are picked up
func LoadStackOutputs(path string) (*StackOutputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stack outputs: %w", err)
	}

	var entries []stackOutputEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse stack outputs: %w", err)
	}

	outputs := &StackOutputs{}
	for _, entry := range entries {
		switch entry.OutputKey {
		case "Table":
			outputs.TableName = entry.OutputValue
		case "API":
			outputs.APIURL = entry.OutputValue
		}
	}

	return outputs, nil
}
