package models

// Token is a single token of an indexed contract
type Token struct {
	ContractAddress string `json:"contract_address" dynamodbav:"ContractAddress"`
	TokenID         string `json:"token_id" dynamodbav:"TokenId"`
	Owner           string `json:"owner" dynamodbav:"Owner"`
	MintAddress     string `json:"mint_address,omitempty" dynamodbav:"MintAddress,omitempty"`
	MintTimestamp   int64  `json:"mint_timestamp,omitempty" dynamodbav:"MintTimestamp,omitempty"`
	MintTransaction string `json:"mint_transaction_hash,omitempty" dynamodbav:"MintTransactionHash,omitempty"`
	MintBlockNumber uint64 `json:"mint_block_number,omitempty" dynamodbav:"MintBlockNumber,omitempty"`
	BlockTimestamp  int64  `json:"block_timestamp" dynamodbav:"BlockTimestamp"`
	MetadataURI     string `json:"metadata_uri,omitempty" dynamodbav:"MetadataUri,omitempty"`
	MetadataStatus  string `json:"metadata_status,omitempty" dynamodbav:"MetadataStatus,omitempty"`
}
