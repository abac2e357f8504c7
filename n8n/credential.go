package n8n

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// CredentialCreate is the body of a create credential request.
type CredentialCreate struct {
	Name string                 `json:"name"`
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// CreateCredential creates a credential and returns the stored record.
func (c *Client) CreateCredential(ctx context.Context, credential *CredentialCreate) (*Credential, error) {
	ret := &Credential{}
	err := c.call(ctx, &Request{
		Operation: "createCredential",
		Method:    http.MethodPost,
		Endpoint:  "credentials",
		Body:      credential,
	}, ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// GetCredentialSchema returns the raw data schema of a credential type.
func (c *Client) GetCredentialSchema(ctx context.Context, credentialType string) (json.RawMessage, error) {
	return c.Do(ctx, &Request{
		Operation: "getCredentialSchema",
		Endpoint:  "credentials/schema/" + url.PathEscape(credentialType),
	})
}
