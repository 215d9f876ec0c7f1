package resource

import "fmt"

func LocationName(projectID, location string) string {
	return fmt.Sprintf("projects/%s/locations/%s", projectID, location)
}

func FunctionFullname(projectID, location, functionName string) string {
	return fmt.Sprintf("%s/functions/%s", LocationName(projectID, location), functionName)
}

func RecognizerParent(projectID string) string {
	return LocationName(projectID, "global")
}

func RecognizerFullname(projectID, recognizerName string) string {
	return fmt.Sprintf("%s/recognizers/%s", RecognizerParent(projectID), recognizerName)
}
