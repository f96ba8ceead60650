package model

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("notation — notes in your terminal"))
	s.WriteString("\n\n")

	switch m.scr {
	case screenLanding:
		s.WriteString("Capture your thoughts, everywhere.\n\n")
		s.WriteString("Your notes live on the Notation server; log in to pick up\n")
		s.WriteString("where you left off, or create an account to get started.\n\n")
		s.WriteString(helpStyle.Render("l/enter: login  r: register  q: quit"))

	case screenLogin:
		s.WriteString(labelStyle.Render("Login to Your Account"))
		s.WriteString("\n\n")
		s.WriteString("Email\n")
		s.WriteString(m.loginInputs[0].View())
		s.WriteString("\n\nPassword\n")
		s.WriteString(m.loginInputs[1].View())
		s.WriteString("\n\n")
		if m.loginBusy {
			s.WriteString(m.spin.View())
			s.WriteString(" logging in...\n")
		}
		s.WriteString(helpStyle.Render("enter: submit  tab: next field  ctrl+r: register  esc: back"))

	case screenRegister:
		s.WriteString(labelStyle.Render("Create Your Account"))
		s.WriteString("\n\n")
		if m.regDone {
			s.WriteString(successStyle.Render("You're all set! Redirecting..."))
			break
		}
		labels := [4]string{"Full Name", "Email", "Password", "Confirm Password"}
		for i, in := range m.regInputs {
			s.WriteString(labels[i])
			s.WriteString("\n")
			s.WriteString(in.View())
			s.WriteString("\n\n")
		}
		if m.regBusy {
			s.WriteString(m.spin.View())
			s.WriteString(" creating account...\n")
		}
		s.WriteString(helpStyle.Render("enter: submit  tab: next field  ctrl+l: login  esc: back"))

	case screenHome:
		if m.sess.User.Name != "" {
			s.WriteString(labelStyle.Render("Hey, " + m.sess.User.Name))
			s.WriteString("\n\n")
		}

		switch {
		case m.confirmID != "":
			title := m.confirmID
			if n, ok := findNote(m.notes, m.confirmID); ok {
				title = n.Title
			}
			s.WriteString(warningStyle.Render(fmt.Sprintf("Delete note '%s'? (y/N)", title)))
			s.WriteString("\n\n")
			s.WriteString(helpStyle.Render("y: confirm  n/esc: cancel"))

		case m.detailID != "":
			if n, ok := findNote(m.notes, m.detailID); ok {
				s.WriteString(titleStyle.Render(n.Title))
				s.WriteString("\n")
				if !n.CreatedAt.IsZero() {
					s.WriteString(helpStyle.Render("Created on " + n.CreatedAt.Format("January 02, 2006 at 03:04 PM")))
					s.WriteString("\n")
				}
				s.WriteString("\n")
				s.WriteString(m.detailBody)
				s.WriteString("\n\n")
			}
			s.WriteString(helpStyle.Render("e: edit  d: delete  b/esc: back  q: quit"))

		case m.loadingNotes:
			s.WriteString(m.spin.View())
			s.WriteString(" loading notes...\n")

		case len(m.notes) == 0:
			s.WriteString("No notes yet. Press 'n' to write your first one.\n\n")
			s.WriteString(helpStyle.Render("n: new  r: refresh  q: quit"))

		default:
			s.WriteString(m.list.View())
			s.WriteString("\n")
			s.WriteString(helpStyle.Render("enter: view  n: new  e: edit  d: delete  r: refresh  q: quit"))
		}

	case screenEditor:
		if m.editMode {
			s.WriteString(labelStyle.Render("Edit Note"))
		} else {
			s.WriteString(labelStyle.Render("Create Note"))
		}
		s.WriteString("\n\n")

		if m.loadingNote {
			s.WriteString(m.spin.View())
			s.WriteString(" loading note...\n\n")
		}

		s.WriteString("Title\n")
		s.WriteString(m.titleInput.View())
		s.WriteString("\n\nContent\n")
		s.WriteString(m.contentArea.View())
		s.WriteString("\n")

		content := m.contentArea.Value()
		s.WriteString(countStyle.Render(fmt.Sprintf("%d words · %d characters", wordCount(content), len(content))))
		s.WriteString("\n\n")

		if m.saving {
			s.WriteString(m.spin.View())
			s.WriteString(" saving...\n")
		}
		s.WriteString(helpStyle.Render("ctrl+s: save  ctrl+e: open $EDITOR  tab: switch field  esc: back"))
	}

	if m.status != "" {
		s.WriteString("\n")
		if m.lastError != "" {
			s.WriteString(errorStyle.Render(m.status))
		} else {
			s.WriteString(successStyle.Render(m.status))
		}
	}

	return s.String()
}
