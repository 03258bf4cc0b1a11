package runas

// CredentialsProvider yields the credentials of the user as which a
// build step needs to run. The absence of credentials is not an error.
// It causes the build step to run as the agent's own user.
type CredentialsProvider interface {
	TryGetCredentials() (*Credentials, bool, error)
}
