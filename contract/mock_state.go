package contract

import (
	"encoding/json"
	"os"
)

// MockState is a map-backed State for tests and local debugging. When created
// with a filename it snapshots the whole map to disk after every write, so a
// debug session can be resumed.
type MockState struct {
	db       map[string]string
	filename string
}

func NewMockState() *MockState {
	return &MockState{db: make(map[string]string)}
}

func NewPersistentMockState(filename string) *MockState {
	m := &MockState{db: make(map[string]string), filename: filename}
	m.loadFromFile()
	return m
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
	m.saveToFile()
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
	m.saveToFile()
}

// Len reports how many keys are stored, handy for leak checks in tests.
func (m *MockState) Len() int {
	return len(m.db)
}

func (m *MockState) saveToFile() {
	if m.filename == "" {
		return
	}
	data, err := json.MarshalIndent(m.db, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(m.filename, data, 0644); err != nil {
		panic(err)
	}
}

func (m *MockState) loadFromFile() {
	if m.filename == "" {
		return
	}
	data, err := os.ReadFile(m.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		panic(err)
	}
	if err := json.Unmarshal(data, &m.db); err != nil {
		panic(err)
	}
}
