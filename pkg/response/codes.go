package response

// Response codes. SUCCESS is zero; everything else is a failure kind
// specific to the collaborating service (queue engine, kv store, or
// chain-replication control plane) that produced the ack.
//
// CHAIN_NOT_READY sits at 0xA1, immediately after
// FAILED_TO_PUSH_TO_TRANSACTION_LOG: the upstream crate's response table
// does not define a byte for it, so this slot is this port's own
// assignment, made to preserve the 0xA0/0xFF bracketing the spec's prose
// describes.
const (
	SUCCESS Code = 0x00

	SERVER_BUSY           Code = 0x10
	QUEUE_DOES_NOT_EXIST  Code = 0x11
	QUEUE_ALREADY_EXISTS  Code = 0x12
	QUEUE_FULL            Code = 0x13
	QUEUE_EMPTY           Code = 0x14
	KEY_DOES_NOT_EXIST    Code = 0x15
	KEY_ALREADY_EXISTS    Code = 0x16

	FAILED_TO_PUSH_TO_TRANSACTION_LOG Code = 0xA0
	CHAIN_NOT_READY                   Code = 0xA1

	INTERNAL_ERROR Code = 0xFF
)

// Code is a one-byte response status.
type Code uint8

// String renders the Code's symbolic name for logging and test failures.
func (c Code) String() string {
	switch c {
	case SUCCESS:
		return "SUCCESS"
	case SERVER_BUSY:
		return "SERVER_BUSY"
	case QUEUE_DOES_NOT_EXIST:
		return "QUEUE_DOES_NOT_EXIST"
	case QUEUE_ALREADY_EXISTS:
		return "QUEUE_ALREADY_EXISTS"
	case QUEUE_FULL:
		return "QUEUE_FULL"
	case QUEUE_EMPTY:
		return "QUEUE_EMPTY"
	case KEY_DOES_NOT_EXIST:
		return "KEY_DOES_NOT_EXIST"
	case KEY_ALREADY_EXISTS:
		return "KEY_ALREADY_EXISTS"
	case FAILED_TO_PUSH_TO_TRANSACTION_LOG:
		return "FAILED_TO_PUSH_TO_TRANSACTION_LOG"
	case CHAIN_NOT_READY:
		return "CHAIN_NOT_READY"
	case INTERNAL_ERROR:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}
