package emitter

import "fmt"

// ImportInstructions are the steps for loading the files into a Blooket set.
func ImportInstructions() []string {
	return []string{
		"Blooket 웹사이트에 로그인합니다.",
		"'Create' 또는 'My Sets'로 이동하여 새 퀴즈 세트를 만듭니다.",
		"'Create Method'에서 'CSV Import' 또는 유사한 옵션을 선택합니다.",
		"다운로드한 CSV 또는 XLSX 파일을 업로드합니다.",
		fmt.Sprintf("Blooket의 컬럼명과 파일의 컬럼명을 정확히 매칭시킵니다. (예: %q -> Question, %q -> 정답 번호 입력 필드, %q는 순서 확인용이며 무시될 수 있습니다)",
			Headers[1], Headers[7], Headers[0]),
		"퀴즈 세트 생성을 완료합니다!",
	}
}
