// Package workflow implements multi-step deployment operations for the
// langstar CLI. This file resolves a deployment reference into a derived
// graph-runtime client targeting that deployment's runtime URL.
package workflow

import (
	"fmt"

	"github.com/codekiln/langstar/internal/sdk"
)

// ResolveGraphClient looks up a deployment by exact name or ID and returns a
// derived client whose graph-runtime requests target the deployment's custom
// URL, together with the matched deployment. Resolution happens on every
// call - deployment URLs change as revisions roll out, so nothing is cached.
func ResolveGraphClient(client *sdk.Client, target string) (*sdk.Client, *sdk.Deployment, error) {
	list, err := client.ListDeployments(100, 0, nil)
	if err != nil {
		return nil, nil, err
	}

	var match *sdk.Deployment
	for i := range list.Resources {
		d := &list.Resources[i]
		if d.Name == target || d.ID == target {
			match = d
			break
		}
	}
	if match == nil {
		return nil, nil, fmt.Errorf("deployment %q not found - check the name or ID with 'langstar graph ls'", target)
	}

	customURL, ok := match.CustomURL()
	if !ok {
		return nil, nil, fmt.Errorf("deployment %q has no custom URL yet - it may still be provisioning (status: %s)",
			target, match.Status)
	}

	return client.WithGraphURL(customURL), match, nil
}
