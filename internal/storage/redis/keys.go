package redis

import "github.com/mcoot/boggle-go/internal/model"

// keyspace builds every key the store touches under one prefix, so several
// deployments can share a Redis database
type keyspace string

func (k keyspace) game(id model.GameID) string {
	return string(k) + ":game:" + string(id)
}

// words is a sorted set of dictionary words, all scored zero so ZRANGE
// returns them in lexical order
func (k keyspace) words() string {
	return string(k) + ":dictionary:words"
}

// wordsStaging receives a new word list before it is renamed over words
func (k keyspace) wordsStaging() string {
	return string(k) + ":dictionary:staging"
}

// wordCount marks the dictionary as loaded, even when it is empty
func (k keyspace) wordCount() string {
	return string(k) + ":dictionary:count"
}
