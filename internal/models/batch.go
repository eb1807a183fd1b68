package models

// Batch is the result of one generation run.
type Batch struct {
	Passwords   []string `json:"passwords"`
	Count       int      `json:"count"`
	Length      int      `json:"length"`
	EntropyBits float64  `json:"entropy_bits"`
}
