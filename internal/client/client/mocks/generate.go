// Package mocks holds gomock doubles for the client transport.
package mocks

//go:generate mockgen -destination=profile_api.go -package=mocks github.com/dmitrijs2005/interviewprep/internal/client/client ProfileAPI
