package models

// Event is a token transfer event emitted in a transaction
type Event struct {
	TransactionHash string `json:"transaction_hash" dynamodbav:"TransactionHash"`
	EventID         string `json:"event_id" dynamodbav:"EventId"`
	EventType       string `json:"event_type" dynamodbav:"EventType"`
	ContractAddress string `json:"contract_address" dynamodbav:"ContractAddress"`
	ContractType    string `json:"contract_type,omitempty" dynamodbav:"ContractType,omitempty"`
	TokenID         string `json:"token_id,omitempty" dynamodbav:"TokenId,omitempty"`
	FromAddress     string `json:"from_address" dynamodbav:"FromAddress"`
	ToAddress       string `json:"to_address" dynamodbav:"ToAddress"`
	BlockNumber     uint64 `json:"block_number" dynamodbav:"BlockNumber"`
	Timestamp       int64  `json:"timestamp" dynamodbav:"Timestamp"`
}
