package cli

import (
	"context"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a display name, email and password, creates the
// account and logs straight in with the same credentials.
func (a *App) Signup(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	user, err := a.sessions.Signup(ctx, name, email, password)
	if err != nil {
		log.Printf("Signup unsuccessful: %s", err.Error())
		return
	}
	log.Printf("Welcome, %s!", user.Name)
}

func (a *App) Login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	user, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}
	log.Printf("Logged in as %s", user.Name)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.sessions.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	log.Println("Logged out")
}
