package recruithub

// API bundles one gateway per backend resource, all sharing the same credentials.
type API struct {
	Clients    *Clients
	Positions  *Positions
	Candidates *Candidates
	Interviews *Interviews
	Users      *Users
	Email      *Email
	Dashboard  *Dashboard
}

func NewAPI(client *Client, credentials Credentials) *API {
	base := resource{client: client, auth: credentials}
	return &API{
		Clients:    &Clients{base},
		Positions:  &Positions{base},
		Candidates: &Candidates{base},
		Interviews: &Interviews{base},
		Users:      &Users{base},
		Email:      &Email{base},
		Dashboard:  &Dashboard{base},
	}
}

type resource struct {
	client *Client
	auth   Credentials
}
