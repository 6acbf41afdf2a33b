package bwprovider

import (
	"maps"
)

// DeploymentBucketName returns the configured deployment bucket. The boolean
// is false when no bucket is configured, in which case the caller picks one.
func (p *Provider) DeploymentBucketName() (string, bool) {
	bucket := p.fw.Service.Provider.DeploymentBucket
	if bucket == nil || bucket.Name == "" {
		return "", false
	}
	return bucket.Name, true
}

// CfnRoleArn returns the role CloudFormation should assume, if configured.
func (p *Provider) CfnRoleArn() (string, bool) {
	role := p.fw.Service.Provider.CfnRole
	return role, role != ""
}

// FunctionZipPath returns the artifact of the named function, falling back to
// the service-wide artifact.
func (p *Provider) FunctionZipPath(function string) (string, error) {
	svc := p.fw.Service
	if fn, ok := svc.Functions[function]; ok && fn.Package != nil && fn.Package.Artifact != "" {
		return fn.Package.Artifact, nil
	}
	if svc.Package.Artifact != "" {
		return svc.Package.Artifact, nil
	}
	return "", &PackageNotFoundError{Function: function}
}

// StackTags returns provider tags merged with stack tags. Stack tags win on
// conflicting keys.
func (p *Provider) StackTags() map[string]string {
	prov := p.fw.Service.Provider
	tags := make(map[string]string, len(prov.Tags)+len(prov.StackTags))
	maps.Copy(tags, prov.Tags)
	maps.Copy(tags, prov.StackTags)
	return tags
}
