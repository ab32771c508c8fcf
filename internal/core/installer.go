package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"podrefs/internal/policies"
	"podrefs/internal/ports"
	"podrefs/internal/types"
)

// categoryRegistration drives one file-registration pass: which accessor
// list to read, which group category its references land in, and whether
// the category permits mirroring the on-disk layout.
type categoryRegistration struct {
	category      types.FileCategory
	group         types.GroupCategory
	mirrorAllowed bool
	paths         func(ports.FileAccessor) []string
}

// registrationOrder fixes the sequence in which categories are added to
// the project: sources, then vendored frameworks and libraries, then
// resources and resource bundles.  The set is closed; a new category
// means a new table row, not a dynamic lookup.
var registrationOrder = []categoryRegistration{
	{types.FileCategorySources, types.GroupCategoryDefault, true, ports.FileAccessor.SourceFiles},
	{types.FileCategoryVendoredFrameworks, types.GroupCategoryFrameworks, false, ports.FileAccessor.VendoredFrameworks},
	{types.FileCategoryVendoredLibraries, types.GroupCategoryFrameworks, false, ports.FileAccessor.VendoredLibraries},
	{types.FileCategoryResources, types.GroupCategoryResources, true, ports.FileAccessor.ResourceFiles},
	{types.FileCategoryResourceBundles, types.GroupCategoryResources, true, ports.FileAccessor.ResourceBundleFiles},
}

// targetAccessor pairs an accessor with the target that owns it, so the
// flattened list computed once per install carries the platform along.
type targetAccessor struct {
	target   string
	platform types.Platform
	accessor ports.FileAccessor
}

// FileReferenceInstaller populates the generated project's groups with
// every target's files and records the header layout in the build and
// public stores.  It owns no resources of its own: everything flows
// through the injected ports, and a failing step aborts with the side
// effects of earlier steps already applied.
type FileReferenceInstaller struct {
	Project       ports.ProjectModel
	BuildHeaders  ports.HeaderStore
	PublicHeaders ports.HeaderStore
	Groups        GroupClassifier
	Mapper        HeaderMapper
	Mirror        policies.MirrorPolicy
	Collisions    *policies.CollisionPolicy
}

func NewFileReferenceInstaller(project ports.ProjectModel, sandbox ports.Sandbox, build ports.HeaderStore, public ports.HeaderStore) FileReferenceInstaller {
	return FileReferenceInstaller{
		Project:       project,
		BuildHeaders:  build,
		PublicHeaders: public,
		Groups:        NewGroupClassifier(project, sandbox),
		Mapper:        NewHeaderMapper(),
		Mirror:        policies.NewMirrorPolicy(sandbox),
		Collisions:    policies.NewCollisionPolicy(),
	}
}

// Install runs the fixed sequence: refresh every accessor, register the
// file categories in table order, then link headers per target.  The
// returned report summarizes what was registered, including soft
// collision warnings.
func (i FileReferenceInstaller) Install(ctx context.Context, targets []ports.PodTarget) (types.InstallReport, error) {
	if i.Project == nil || i.BuildHeaders == nil || i.PublicHeaders == nil {
		return types.InstallReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("installer requires project model and header store ports")
	}

	accessors := flattenAccessors(targets)
	report := types.InstallReport{}

	if err := refreshAccessors(accessors); err != nil {
		return report, err
	}
	for _, registration := range registrationOrder {
		count, err := i.registerCategory(ctx, accessors, registration)
		if err != nil {
			return report, err
		}
		report.FileReferences += count
	}
	headerFiles, searchRoots, err := i.linkHeaders(targets)
	if err != nil {
		return report, err
	}
	report.HeaderFiles = headerFiles
	report.SearchRoots = searchRoots
	report.Packages = countPackages(accessors)
	report.Collisions = i.Collisions.Warnings()

	log.Ctx(ctx).Debug().
		Int("packages", report.Packages).
		Int("file_references", report.FileReferences).
		Int("header_files", report.HeaderFiles).
		Msg("file references installed")
	return report, nil
}

// flattenAccessors computes the accessor list once so every step walks
// the same flattened view of the targets.
func flattenAccessors(targets []ports.PodTarget) []targetAccessor {
	var out []targetAccessor
	for _, target := range targets {
		for _, accessor := range target.FileAccessors {
			out = append(out, targetAccessor{
				target:   target.Name,
				platform: target.Platform,
				accessor: accessor,
			})
		}
	}
	return out
}

// refreshAccessors re-reads every accessor from disk so registrations
// see the state left behind by hooks, not the one found at discovery.
func refreshAccessors(accessors []targetAccessor) error {
	for _, entry := range accessors {
		if err := entry.accessor.Refresh(); err != nil {
			return err
		}
	}
	return nil
}

func (i FileReferenceInstaller) registerCategory(ctx context.Context, accessors []targetAccessor, registration categoryRegistration) (int, error) {
	count := 0
	for _, entry := range accessors {
		paths := registration.paths(entry.accessor)
		if len(paths) == 0 {
			continue
		}
		spec := entry.accessor.Spec()
		group, err := i.Groups.GroupFor(spec.Name, registration.group)
		if err != nil {
			return count, err
		}
		mirror := i.Mirror.Allows(spec.Name, registration.mirrorAllowed)
		for _, path := range paths {
			if err := i.Project.AddFileReference(path, group, mirror); err != nil {
				return count, err
			}
			count++
		}
	}
	log.Ctx(ctx).Debug().
		Str("category", string(registration.category)).
		Int("files", count).
		Msg("file references registered")
	return count, nil
}

// linkHeaders publishes each accessor's headers per target: the root
// namespace is registered as a search root in both stores, build-visible
// headers go to the build store, public headers and vendored framework
// headers to the public store.
func (i FileReferenceInstaller) linkHeaders(targets []ports.PodTarget) (int, int, error) {
	headerFiles := 0
	searchRoots := 0
	for _, target := range targets {
		for _, accessor := range target.FileAccessors {
			spec := accessor.Spec()
			namespace := spec.RootName()

			if err := i.BuildHeaders.AddSearchRoot(namespace, target.Platform); err != nil {
				return headerFiles, searchRoots, err
			}
			if err := i.PublicHeaders.AddSearchRoot(namespace, target.Platform); err != nil {
				return headerFiles, searchRoots, err
			}
			searchRoots++

			buildMapping, err := i.Mapper.MapHeaders(namespace, spec.Consumer, accessor.Root(), accessor.Headers())
			if err != nil {
				return headerFiles, searchRoots, err
			}
			if err := i.publish(i.BuildHeaders, types.HeaderScopeBuild, buildMapping, target.Platform, namespace); err != nil {
				return headerFiles, searchRoots, err
			}

			publicMapping, err := i.Mapper.MapHeaders(namespace, spec.Consumer, accessor.Root(), accessor.PublicHeaders())
			if err != nil {
				return headerFiles, searchRoots, err
			}
			frameworkMapping, err := i.Mapper.MapFrameworkHeaders(namespace, accessor)
			if err != nil {
				return headerFiles, searchRoots, err
			}
			publicMapping.Merge(frameworkMapping)
			if err := i.publish(i.PublicHeaders, types.HeaderScopePublic, publicMapping, target.Platform, namespace); err != nil {
				return headerFiles, searchRoots, err
			}

			headerFiles += buildMapping.HeaderCount() + frameworkMapping.HeaderCount()
		}
	}
	return headerFiles, searchRoots, nil
}

func (i FileReferenceInstaller) publish(store ports.HeaderStore, scope types.HeaderScope, mapping *types.HeaderMapping, platform types.Platform, pkg string) error {
	for _, dest := range mapping.Destinations() {
		if err := store.AddHeaders(dest, mapping.HeadersFor(dest), platform); err != nil {
			return err
		}
		i.Collisions.Observe(scope, dest, pkg)
	}
	return nil
}

func countPackages(accessors []targetAccessor) int {
	seen := map[string]struct{}{}
	for _, entry := range accessors {
		seen[entry.accessor.Spec().RootName()] = struct{}{}
	}
	return len(seen)
}
