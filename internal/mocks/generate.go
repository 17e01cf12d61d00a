package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/league --output domain/league --outpkg leaguemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/leaguestanding --output domain/leaguestanding --outpkg leaguestandingmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Predictor --dir ../domain/prediction --output domain/prediction --outpkg predictionmock --filename predictor_mock.go
