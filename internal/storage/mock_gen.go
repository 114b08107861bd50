// internal/storage/mock_gen.go
package storage

//go:generate mockgen -typed -source=./storage.go -destination=../mocks/mock_object_store.go -package=mocks ObjectStore
