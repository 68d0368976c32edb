package cli

import (
	"fmt"
	"strings"
)

func (a *App) renderWidget() {
	r := a.widget.Render()
	if !r.Visible {
		return
	}

	fmt.Fprintf(a.out, "[%s | %s]\n", r.Name, r.AvatarURL)
	for _, item := range r.Items {
		fmt.Fprintf(a.out, "  - %-10s click %s\n", item.Label, item.Target)
	}
}

func (a *App) renderProfile() {
	v := a.profile.View()

	if !v.Loaded {
		fmt.Fprintln(a.out, "Profile is not available.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Profile (%s)\n", v.State)
	fmt.Fprintf(&b, "  Name:  %s\n", v.Name)
	fmt.Fprintf(&b, "  Email: %s\n", v.Email)

	image := v.ImageSource
	if v.Pending {
		image = "new image selected (not uploaded yet)"
	}
	fmt.Fprintf(&b, "  Image: %s\n", image)

	if v.Notice != "" {
		fmt.Fprintf(&b, "  ! %s\n", v.Notice)
	}
	fmt.Fprint(a.out, b.String())
}
