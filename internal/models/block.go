package models

// Block is an indexed block header with its indexing state
type Block struct {
	BlockHash      string      `json:"block_hash" dynamodbav:"BlockHash"`
	BlockNumber    uint64      `json:"block_number" dynamodbav:"BlockNumber"`
	Timestamp      int64       `json:"timestamp" dynamodbav:"Timestamp"`
	Status         BlockStatus `json:"status" dynamodbav:"Status"`
	IndexerVersion string      `json:"indexer_version,omitempty" dynamodbav:"IndexerVersion,omitempty"`
	IndexerID      string      `json:"indexer_identifier,omitempty" dynamodbav:"IndexerIdentifier,omitempty"`
}
