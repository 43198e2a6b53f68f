package database

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller interfaces (CompanyRepository,
// SettingsRepository) for better testability.
type DataStore interface {
	CompanyRepository
	SettingsRepository
}
