package config

type MemoryBackend struct {
	data map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) Get(key string) (string, error) {
	return m.data[key], nil
}

func (m *MemoryBackend) Set(key, value string) error {
	m.data[key] = value
	return nil
}
