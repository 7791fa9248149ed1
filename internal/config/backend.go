package config

// Backend stores small values that outlive a session, such as the last host
// a session connected to.
type Backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

const LastHostKey = "last_host"
