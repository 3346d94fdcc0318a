package models

// ContractType identifies the token standard a contract implements
type ContractType string

const (
	ContractTypeERC721  ContractType = "ERC721"
	ContractTypeERC1155 ContractType = "ERC1155"
	ContractTypeOther   ContractType = "OTHER"
)

// BlockStatus is the finality status of an indexed block
type BlockStatus string

const (
	BlockStatusPending      BlockStatus = "PENDING"
	BlockStatusAcceptedOnL2 BlockStatus = "ACCEPTED_ON_L2"
	BlockStatusAcceptedOnL1 BlockStatus = "ACCEPTED_ON_L1"
)
