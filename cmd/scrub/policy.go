package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/scrub/pkg/policy"
)

var policyFlags struct {
	policyFile string
}

var policyCmd = &cobra.Command{
	Use:   "policy [content]",
	Short: "Enforce a declarative YAML policy",
	Long: `Enforce a declarative policy against content and report violations.

The policy file is YAML with up to four fields:

  max_length: 280
  forbidden_patterns:
    - '(?i)confidential'
  required_patterns:
    - '^\S'
  auto_sanitize: true

Violations are data, not failures: the envelope reports every violation
alongside the sanitized content. Content comes from the argument or
stdin.

Examples:
  scrub policy --policy limits.yaml "user bio text"

  cat draft.txt | scrub policy --policy limits.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPolicy,
}

func init() {
	rootCmd.AddCommand(policyCmd)

	policyCmd.Flags().StringVarP(&policyFlags.policyFile, "policy", "p", "", "policy YAML file (required)")
	_ = policyCmd.MarkFlagRequired("policy")
}

func runPolicy(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(policyFlags.policyFile)
	if err != nil {
		return fmt.Errorf("read policy file: %w", err)
	}
	pol, err := policy.FromYAML(data)
	if err != nil {
		return err
	}

	content, err := contentFromArgsOrStdin(cmd, args, 0)
	if err != nil {
		return err
	}

	params := map[string]any{
		"content": content,
		"policy":  policyToParams(pol),
	}
	return printEnvelope(cmd, engine.Execute("policy_enforce", params))
}

// policyToParams rebuilds the loose parameter map the policy_enforce
// operation expects, including only the fields the document set.
func policyToParams(p policy.Policy) map[string]any {
	m := make(map[string]any)
	if p.MaxLength > 0 {
		m["max_length"] = p.MaxLength
	}
	if len(p.ForbiddenPatterns) > 0 {
		m["forbidden_patterns"] = p.ForbiddenPatterns
	}
	if len(p.RequiredPatterns) > 0 {
		m["required_patterns"] = p.RequiredPatterns
	}
	if p.AutoSanitize {
		m["auto_sanitize"] = true
	}
	return m
}
