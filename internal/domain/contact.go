package domain

import "context"

// ContactInfo is the singleton record backing the contact page. Like
// HomeContent it is created lazily and updated wholesale, never deleted.
type ContactInfo struct {
	ID            int64
	Email         string
	Phone         string
	Address       string
	BusinessHours string
	Facebook      string
	Twitter       string
	LinkedIn      string
	Instagram     string
}

// ContactInfoRepository persists the contact info singleton.
type ContactInfoRepository interface {
	Get(ctx context.Context) (*ContactInfo, error)
	Upsert(ctx context.Context, info *ContactInfo) error
}
