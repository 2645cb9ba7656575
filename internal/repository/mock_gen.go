// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./candidate.go -destination=../mocks/mock_candidate_repository.go -package=mocks CandidateRepositoryIface
//go:generate mockgen -source=./template.go -destination=../mocks/mock_template_repository.go -package=mocks TemplateRepositoryIface
//go:generate mockgen -source=./tag.go -destination=../mocks/mock_tag_repository.go -package=mocks TagRepositoryIface
//go:generate mockgen -source=./activity.go -destination=../mocks/mock_activity_repository.go -package=mocks ActivityRepositoryIface
//go:generate mockgen -source=./profile.go -destination=../mocks/mock_profile_repository.go -package=mocks ProfileRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
