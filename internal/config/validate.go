package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.MinPasswordLen < 6 {
		return fmt.Errorf("auth.min_password_len must be at least 6 (got %d)", c.Auth.MinPasswordLen)
	}

	if err := c.CRM.validate(); err != nil {
		return fmt.Errorf("crm: %w", err)
	}

	if c.Storage.Enabled() {
		if c.Storage.AccessKeyID == "" || c.Storage.SecretAccessKey == "" {
			return fmt.Errorf("storage: bucket configured but credentials missing")
		}
	}

	return nil
}

func (c *CRMConfig) validate() error {
	if c.MaxRecipientsPerSend <= 0 {
		return fmt.Errorf("max_recipients_per_send must be > 0 (got %d)", c.MaxRecipientsPerSend)
	}
	if c.ListDefaultLimit <= 0 || c.ListMaxLimit < c.ListDefaultLimit {
		return fmt.Errorf("list limits invalid (default %d, max %d)", c.ListDefaultLimit, c.ListMaxLimit)
	}
	if c.DispatchBatchSize <= 0 {
		return fmt.Errorf("dispatch_batch_size must be > 0 (got %d)", c.DispatchBatchSize)
	}
	if c.DispatchConcurrency <= 0 {
		return fmt.Errorf("dispatch_concurrency must be > 0 (got %d)", c.DispatchConcurrency)
	}
	return nil
}
