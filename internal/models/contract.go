package models

// Contract is an indexed token contract
type Contract struct {
	Address      string       `json:"address" dynamodbav:"Address"`
	ContractType ContractType `json:"contract_type" dynamodbav:"ContractType"`
	Name         string       `json:"name,omitempty" dynamodbav:"Name,omitempty"`
	Symbol       string       `json:"symbol,omitempty" dynamodbav:"Symbol,omitempty"`
	Image        string       `json:"image,omitempty" dynamodbav:"Image,omitempty"`
}
