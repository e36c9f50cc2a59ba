package config

type StorageKeyStruct struct{}

func NewStorageKeyStruct() *StorageKeyStruct {
	return &StorageKeyStruct{}
}

// SubjectListKey returns the single fixed key the subject list blob lives under.
func (r *StorageKeyStruct) SubjectListKey() string {
	return "attendance:subjects"
}

var StorageKey = NewStorageKeyStruct()
