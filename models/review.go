package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Review kinds. A provider review is authored by a seeker about a provider;
// customer feedback is the mirror, authored by a provider about a seeker.
const (
	ReviewKindProvider = "provider"
	ReviewKindCustomer = "customer"
)

// Review is an immutable rating+comment tied to one completed service request.
// The document key is deterministic over (kind, author, subject, request) so a
// second submission for the same tuple collides on insert instead of racing a
// read-then-write check.
type Review struct {
	Key              string    `bson:"_id" json:"-"`
	Kind             string    `bson:"kind" json:"kind"`
	AuthorID         string    `bson:"authorId" json:"authorId"`
	SubjectID        string    `bson:"subjectId" json:"subjectId"`
	ServiceRequestID string    `bson:"serviceRequestId" json:"serviceRequestId"`
	Rating           int       `bson:"rating" json:"rating"`
	Comment          string    `bson:"comment" json:"comment,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// ReviewKey derives the deterministic document key for a review tuple.
func ReviewKey(kind, authorID, subjectID, requestID string) string {
	sum := sha256.Sum256([]byte(kind + ":" + authorID + ":" + subjectID + ":" + requestID))
	return hex.EncodeToString(sum[:])
}
