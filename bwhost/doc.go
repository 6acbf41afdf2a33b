// Package bwhost models the deployment framework that loads provider plugins.
//
// A run consists of the command line [Options], the host-resolved [RunConfig],
// and the declarative [Service] read from serverless.yml. Plugins receive all
// three through a [Framework] and register themselves in its [Registry]:
//
//	svc, err := bwhost.LoadService("serverless.yml")
//	if err != nil {
//	    return err
//	}
//	fw := bwhost.NewFramework(svc, opts, cfg, bwhost.NewWriterSink(os.Stderr))
//
// Service files are validated on load. Optional settings such as the
// deployment bucket or the CloudFormation role may be left out entirely.
package bwhost
