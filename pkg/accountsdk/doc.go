// Package accountsdk provides a Go client for the Gatehouse accounts
// service, plus the wire types shared between the client and the server's
// HTTP handlers.
//
// Typical usage:
//
//	client := accountsdk.NewClient("http://localhost:8080")
//	login, err := client.Login(ctx, "ann@example.com", "password")
//	if err != nil {
//		// *accountsdk.APIError carries the server's error code
//	}
//	profile, err := client.Me(ctx, login.Token)
package accountsdk
