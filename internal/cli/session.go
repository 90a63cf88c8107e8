package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/xelthorlang/xelthor/internal/common"
	"github.com/xelthorlang/xelthor/internal/repositories/accounts"
)

func (a *App) loginLogout(ctx context.Context) {
	if a.isLoggedIn() {
		a.auth.InvalidateSession(a.token)
		fmt.Fprintf(a.out, "Logged out %s.\n", a.user)
		a.token, a.user, a.role = "", "", ""
		return
	}

	username, err := GetSimpleText(a.reader, "\nEnter username", a.out)
	if err != nil || username == "" {
		return
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Could not read password:", err)
		return
	}
	defer common.WipeByteArray(password)

	token, err := a.auth.VerifyCredentials(ctx, username, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed: invalid username or password.")
		return
	}
	sess, err := a.auth.VerifySession(token)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}
	a.token, a.user, a.role = token, sess.UserName, sess.Role
	fmt.Fprintf(a.out, "Welcome, %s.\n", a.user)
}

func (a *App) changePassword(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return
	}
	oldPw, err := GetPassword("Current password", a.out)
	if err != nil {
		return
	}
	defer common.WipeByteArray(oldPw)
	newPw, err := GetPassword("New password", a.out)
	if err != nil {
		return
	}
	defer common.WipeByteArray(newPw)

	if err := a.auth.ChangePassword(ctx, a.token, string(oldPw), string(newPw)); err != nil {
		fmt.Fprintln(a.out, "Could not change password:", err)
		return
	}
	fmt.Fprintln(a.out, "Password changed.")
}

func (a *App) manageUsers(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	choice, err := GetSimpleText(a.reader, "\nUser management: 1. add user  2. remove user", a.out)
	if err != nil {
		return
	}
	switch strings.TrimSpace(choice) {
	case "1":
		a.addUser(ctx)
	case "2":
		a.removeUser(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown option.")
	}
}

func (a *App) addUser(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "New username", a.out)
	if err != nil || username == "" {
		return
	}
	password, err := GetPassword("New user's password", a.out)
	if err != nil {
		return
	}
	defer common.WipeByteArray(password)

	roleText, err := GetSimpleText(a.reader, "Role: 1. user  2. admin", a.out)
	if err != nil {
		return
	}
	role := accounts.RoleUser
	if strings.TrimSpace(roleText) == "2" {
		role = accounts.RoleAdmin
	}

	if err := a.auth.AddUser(ctx, a.token, username, string(password), role); err != nil {
		fmt.Fprintln(a.out, "Could not add user:", err)
		return
	}
	fmt.Fprintf(a.out, "User %s added with role %s.\n", username, role)
}

func (a *App) removeUser(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Username to remove", a.out)
	if err != nil || username == "" {
		return
	}
	if err := a.auth.RemoveUser(ctx, a.token, username); err != nil {
		fmt.Fprintln(a.out, "Could not remove user:", err)
		return
	}
	fmt.Fprintf(a.out, "User %s removed.\n", username)
}
