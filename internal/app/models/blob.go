package models

import "time"

// Blob is the stored form of one persisted collection.
type Blob struct {
	Key       string    `json:"key" bson:"_id"`
	Payload   []byte    `json:"payload" bson:"payload"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

func NewBlob(key string, payload []byte) Blob {
	return Blob{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
}
