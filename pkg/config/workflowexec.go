package config

import "time"

// Per-step retry bounds enforced by Normalize.
const (
	maxRetryCount   = 10
	maxRetryDelayMs = 60_000
	maxTimeoutMs    = 60_000
)

// WorkflowExecutionConfig is the per-step retry policy of the workflow
// engine. Persisted in settings under "workflow_execution_config".
type WorkflowExecutionConfig struct {
	// RetryCount is how many times a step is retried on transient or
	// rate_limited failures. 0 disables retries.
	RetryCount int `json:"retryCount"`

	// RetryDelayMs is the delay between step retries.
	RetryDelayMs int `json:"retryDelayMs"`

	// TimeoutMs bounds one step attempt. 0 means no per-step timeout.
	TimeoutMs int `json:"timeoutMs"`
}

// DefaultWorkflowExecutionConfig returns the built-in step policy.
func DefaultWorkflowExecutionConfig() WorkflowExecutionConfig {
	return WorkflowExecutionConfig{
		RetryCount:   3,
		RetryDelayMs: 1000,
		TimeoutMs:    30_000,
	}
}

// Normalize clamps the policy into its documented bounds.
func (c WorkflowExecutionConfig) Normalize() WorkflowExecutionConfig {
	if c.RetryCount < 0 {
		c.RetryCount = 0
	}
	if c.RetryCount > maxRetryCount {
		c.RetryCount = maxRetryCount
	}
	if c.RetryDelayMs < 0 {
		c.RetryDelayMs = 0
	}
	if c.RetryDelayMs > maxRetryDelayMs {
		c.RetryDelayMs = maxRetryDelayMs
	}
	if c.TimeoutMs < 0 {
		c.TimeoutMs = 0
	}
	if c.TimeoutMs > maxTimeoutMs {
		c.TimeoutMs = maxTimeoutMs
	}
	return c
}

// RetryDelay returns the delay as a duration.
func (c WorkflowExecutionConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// StepTimeout returns the per-step timeout, 0 when disabled.
func (c WorkflowExecutionConfig) StepTimeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
